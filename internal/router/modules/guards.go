package modules

import "github.com/gin-gonic/gin"

// Guards are the middlewares shared by the feature modules.
type Guards struct {
	// Auth is nil when coach authentication is disabled.
	Auth gin.HandlerFunc
	// Write limits mutating routes. It passes everything through when Redis is absent.
	Write gin.HandlerFunc
}

// group returns a sub-group of rg behind Auth when it is set.
func (g Guards) group(rg *gin.RouterGroup, path string) *gin.RouterGroup {
	grp := rg.Group(path)
	if g.Auth != nil {
		grp.Use(g.Auth)
	}
	return grp
}

// write prefixes h with the write limiter.
func (g Guards) write(h gin.HandlerFunc) []gin.HandlerFunc {
	if g.Write == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{g.Write, h}
}
