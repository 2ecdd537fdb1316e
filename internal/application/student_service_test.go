package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
	"github.com/oksasatya/fitness-gen-api/internal/domain/optional"
	"github.com/oksasatya/fitness-gen-api/pkg/mailer"
	mailtpl "github.com/oksasatya/fitness-gen-api/pkg/mailer/templates"
)

func newStudentService() (*StudentService, *memStudents, *fakeIndex, *fakeQueue) {
	repo := newMemStudents()
	idx := &fakeIndex{}
	q := &fakeQueue{}
	return NewStudentService(repo, idx, q, mailtpl.Brand{AppName: "Fitness Gen"}, nil), repo, idx, q
}

func TestStudentService_CreateNormalizes(t *testing.T) {
	svc, _, idx, q := newStudentService()

	st, err := svc.Create(context.Background(), CreateStudentInput{
		CPF:       "123.456.789-09",
		Name:      "  Ana  ",
		BirthDate: birth,
		Sex:       ptr("  "),
		Email:     ptr(" ana@example.com "),
		Phone:     ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678909", st.CPF)
	assert.Equal(t, "Ana", st.Name)
	assert.Nil(t, st.Sex)
	assert.Nil(t, st.Phone)
	require.NotNil(t, st.Email)
	assert.Equal(t, "ana@example.com", *st.Email)

	assert.Equal(t, []int64{st.ID}, idx.indexed)
	require.Len(t, q.jobs, 1)
	job := q.jobs[0].(mailer.EmailJob)
	assert.Equal(t, "ana@example.com", job.To)
	assert.Equal(t, mailtpl.WelcomeStudent, job.Template)
	assert.Equal(t, "123.456.789-09", job.Data["CPF"])
}

func TestStudentService_CreateWithoutEmailSkipsWelcome(t *testing.T) {
	svc, _, _, q := newStudentService()

	_, err := svc.Create(context.Background(), CreateStudentInput{CPF: "52998224725", Name: "Bia", BirthDate: birth})
	require.NoError(t, err)
	assert.Empty(t, q.jobs)
}

func TestStudentService_CreateInvalidCPFNeverReachesStore(t *testing.T) {
	svc, repo, _, _ := newStudentService()

	for _, cpf := range []string{"11111111111", "123", "12345678900", ""} {
		_, err := svc.Create(context.Background(), CreateStudentInput{CPF: cpf, Name: "X", BirthDate: birth})
		assert.ErrorIs(t, err, errs.ErrInvalidIdentity, cpf)
	}
	assert.Empty(t, repo.rows)
}

func TestStudentService_CreateDuplicateCPF(t *testing.T) {
	svc, _, _, _ := newStudentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateStudentInput{CPF: "123.456.789-09", Name: "Other", BirthDate: birth})
	require.ErrorIs(t, err, errs.ErrUniqueViolation)
	assert.Equal(t, "cpf", errs.FieldOf(err))
}

func TestStudentService_SideEffectFailuresDoNotFailCreate(t *testing.T) {
	repo := newMemStudents()
	svc := NewStudentService(repo, &fakeIndex{err: errors.New("es down")}, &fakeQueue{err: errors.New("amqp down")}, mailtpl.Brand{}, nil)

	_, err := svc.Create(context.Background(), CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth, Email: ptr("a@b.c")})
	assert.NoError(t, err)
}

func TestStudentService_Lookup(t *testing.T) {
	svc, _, _, _ := newStudentService()
	ctx := context.Background()

	ana, err := svc.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth})
	require.NoError(t, err)
	bia, err := svc.Create(ctx, CreateStudentInput{CPF: "52998224725", Name: "Bia", BirthDate: birth})
	require.NoError(t, err)

	got, err := svc.Lookup(ctx, StudentKey{CPF: ptr("529.982.247-25")})
	require.NoError(t, err)
	assert.Equal(t, bia.ID, got.ID)

	// id wins over cpf
	got, err = svc.Lookup(ctx, StudentKey{ID: &ana.ID, CPF: ptr("52998224725")})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, got.ID)

	_, err = svc.Lookup(ctx, StudentKey{})
	assert.ErrorIs(t, err, ErrLookupKeyRequired)

	_, err = svc.Lookup(ctx, StudentKey{CPF: ptr("000.000.000-00")})
	assert.ErrorIs(t, err, errs.ErrInvalidIdentity)

	_, err = svc.Lookup(ctx, StudentKey{ID: ptr(int64(999))})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.Lookup(ctx, StudentKey{CPF: ptr("11144477735")})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStudentService_UpdatePartial(t *testing.T) {
	svc, _, idx, _ := newStudentService()
	ctx := context.Background()

	st, err := svc.Create(ctx, CreateStudentInput{
		CPF: "12345678909", Name: "Ana", BirthDate: birth,
		Email: ptr("ana@example.com"), Phone: ptr("+5511999990000"),
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, StudentKey{CPF: ptr("123.456.789-09")}, entity.StudentPatch{
		CPF:   optional.Of("52998224725"),
		Name:  optional.Of(" Ana Souza "),
		Phone: optional.Of("   "),
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678909", got.CPF)
	assert.Equal(t, "Ana Souza", got.Name)
	assert.Nil(t, got.Phone, "blank phone clears the column")
	require.NotNil(t, got.Email)
	assert.Equal(t, "ana@example.com", *got.Email, "omitted email stays")
	assert.Equal(t, []int64{st.ID, st.ID}, idx.indexed)
}

func TestStudentService_UpdateEmptyPatchIsIdentity(t *testing.T) {
	svc, _, _, _ := newStudentService()
	ctx := context.Background()

	st, err := svc.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth, Sex: ptr("F")})
	require.NoError(t, err)

	got, err := svc.Update(ctx, StudentKey{ID: &st.ID}, entity.StudentPatch{})
	require.NoError(t, err)
	assert.Equal(t, *st, *got)
}

func TestStudentService_UpdateDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newStudentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth, Email: ptr("ana@example.com")})
	require.NoError(t, err)
	bia, err := svc.Create(ctx, CreateStudentInput{CPF: "52998224725", Name: "Bia", BirthDate: birth})
	require.NoError(t, err)

	_, err = svc.Update(ctx, StudentKey{ID: &bia.ID}, entity.StudentPatch{Email: optional.Of("ana@example.com")})
	require.ErrorIs(t, err, errs.ErrUniqueViolation)
	assert.Equal(t, "email", errs.FieldOf(err))
}

func TestStudentService_Delete(t *testing.T) {
	svc, repo, idx, _ := newStudentService()
	ctx := context.Background()

	st, err := svc.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, StudentKey{CPF: ptr("12345678909")}))
	assert.Empty(t, repo.rows)
	assert.Equal(t, []int64{st.ID}, idx.removed)

	assert.ErrorIs(t, svc.Delete(ctx, StudentKey{ID: &st.ID}), errs.ErrNotFound)
}

func TestStudentService_SearchWithoutIndex(t *testing.T) {
	svc := NewStudentService(newMemStudents(), nil, nil, mailtpl.Brand{}, nil)

	out, err := svc.Search(context.Background(), "ana", 10)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestStudentService_SearchDelegates(t *testing.T) {
	svc, _, idx, _ := newStudentService()
	idx.searched = []map[string]any{{"name": "Ana"}}

	out, err := svc.Search(context.Background(), "ana", 5)
	require.NoError(t, err)
	assert.Equal(t, "ana", idx.searchQ)
	assert.Len(t, out, 1)
}

func TestStudentService_ResendWelcome(t *testing.T) {
	svc, _, _, q := newStudentService()
	ctx := context.Background()

	withMail, err := svc.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth, Email: ptr("ana@example.com")})
	require.NoError(t, err)
	noMail, err := svc.Create(ctx, CreateStudentInput{CPF: "52998224725", Name: "Bia", BirthDate: birth})
	require.NoError(t, err)

	ok, err := svc.ResendWelcome(ctx, withMail.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, q.jobs, 2)

	_, err = svc.ResendWelcome(ctx, noMail.ID)
	assert.ErrorIs(t, err, ErrNoEmail)

	_, err = svc.ResendWelcome(ctx, 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	disabled := NewStudentService(newMemStudents(), nil, nil, mailtpl.Brand{}, nil)
	st, err := disabled.Create(ctx, CreateStudentInput{CPF: "12345678909", Name: "Ana", BirthDate: birth, Email: ptr("a@b.c")})
	require.NoError(t, err)
	ok, err = disabled.ResendWelcome(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
