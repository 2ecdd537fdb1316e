package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/config"
	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/infrastructure/search"
	"github.com/oksasatya/fitness-gen-api/pkg/helpers"
)

// Container carries the components main builds once at startup.
// Optional integrations (Redis, GCS, Elasticsearch, RabbitMQ) stay nil when not configured,
// and the accessors below turn a nil client into a nil port rather than a typed nil.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	DB     *pgxpool.Pool
	Redis  *redis.Client
	GCS    *storage.Client
	ES     *elasticsearch.Client
	Rabbit *helpers.RabbitPublisher
	JWT    *helpers.JWTManager
}

func (c *Container) StudentIndex() application.StudentIndex {
	if c.ES == nil || c.Config.ESStudentsIndex == "" {
		return nil
	}
	return search.NewStudentIndex(c.ES, c.Config.ESStudentsIndex)
}

func (c *Container) EmailQueue() application.EmailQueue {
	if c.Rabbit == nil || !c.Config.MailSendEnabled {
		return nil
	}
	return c.Rabbit
}

func (c *Container) PhotoStore() application.PhotoStore {
	if c.GCS == nil || c.Config.GCSBucket == "" {
		return nil
	}
	return helpers.NewGCSUploader(c.GCS, c.Config.GCSBucket)
}

func (c *Container) SessionStore() application.SessionStore {
	if c.Redis == nil {
		return nil
	}
	return helpers.NewRedisSessionStore(c.Redis)
}
