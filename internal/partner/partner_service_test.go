package partner_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/archit-sahay/Aibo-Meikan/internal/mailer"
	mailerMock "github.com/archit-sahay/Aibo-Meikan/internal/mailer/mock"
	"github.com/archit-sahay/Aibo-Meikan/internal/partner"
	partnererrors "github.com/archit-sahay/Aibo-Meikan/internal/partner/errors"
	partnerMock "github.com/archit-sahay/Aibo-Meikan/internal/partner/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *partnerMock.MockRepository
	notifier *mailerMock.MockNotifier
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := partnerMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).DoAndReturn(func(tx *sql.Tx) partner.Repository {
		return repo
	}).AnyTimes()

	notifier := mailerMock.NewMockNotifier(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     repo,
		notifier: notifier,
	}
}

func gormNotFound() error {
	return gorm.ErrRecordNotFound
}

func validRegisterRequest() partner.RegisterPartnerRequest {
	return partner.RegisterPartnerRequest{
		Name:         "Acme",
		PhoneNumbers: []string{"9876543210"},
		City:         "Pune",
		State:        "MH",
		PinCode:      "411001",
		Address:      "1 Main St",
		Email:        "a@acme.com",
	}
}

func TestPartnerService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a PART code and sends the notification", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil)

		var created *partner.Partner
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *partner.Partner) error {
				created = p
				return nil
			})

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		mailSent := make(chan struct{})
		deps.notifier.EXPECT().SendRegistrationEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data mailer.RegistrationData) error {
				assert.Equal(t, "Acme", data.Name)
				close(mailSent)
				return nil
			})

		code, err := svc.Register(ctx, validRegisterRequest())

		assert.NoError(t, err)
		assert.Regexp(t, `^PART-[0-9A-F]{8}$`, code)
		assert.NotNil(t, created)
		assert.Equal(t, code, created.UniqueCode)
		assert.Nil(t, created.AdminNotes)

		select {
		case <-mailSent:
		case <-time.After(2 * time.Second):
			t.Fatal("registration email was never sent")
		}
	})

	t.Run("trims fields and normalizes phone numbers before storage", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		req := partner.RegisterPartnerRequest{
			Name:         "  Acme  ",
			PhoneNumbers: []string{"(987) 654-3210"},
			City:         " Pune ",
			State:        "MH",
			PinCode:      " 411001 ",
			Address:      "1 Main St",
			Email:        " a@acme.com ",
		}

		deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil)

		var created *partner.Partner
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *partner.Partner) error {
				created = p
				return nil
			})

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		mailSent := make(chan struct{})
		deps.notifier.EXPECT().SendRegistrationEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ mailer.RegistrationData) error {
				close(mailSent)
				return nil
			})

		_, err := svc.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Acme", created.Name)
		assert.Equal(t, "Pune", created.City)
		assert.Equal(t, "411001", created.PinCode)
		assert.Equal(t, "a@acme.com", created.Email)
		assert.Equal(t, partner.PhoneNumbers{"9876543210"}, created.PhoneNumbers)

		<-mailSent
	})

	t.Run("registration succeeds even when the email fails", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		mailSent := make(chan struct{})
		deps.notifier.EXPECT().SendRegistrationEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ mailer.RegistrationData) error {
				close(mailSent)
				return errors.New("smtp down")
			})

		code, err := svc.Register(ctx, validRegisterRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, code)

		<-mailSent
	})

	t.Run("regenerates on collision until a free code is found", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		gomock.InOrder(
			deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(true, nil),
			deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(true, nil),
			deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		mailSent := make(chan struct{})
		deps.notifier.EXPECT().SendRegistrationEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ mailer.RegistrationData) error {
				close(mailSent)
				return nil
			})

		_, err := svc.Register(ctx, validRegisterRequest())

		assert.NoError(t, err)
		<-mailSent
	})

	t.Run("gives up after exactly 10 colliding attempts", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewServiceWithGenerator(deps.db, deps.repo, nil, deps.notifier,
			func() (string, error) { return "PART-DEADBEEF", nil })

		deps.repo.EXPECT().
			ExistsByUniqueCode(gomock.Any(), "PART-DEADBEEF").
			Return(true, nil).
			Times(10)

		code, err := svc.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, partnererrors.ErrCodeGenerationExhausted)
		assert.Empty(t, code)
	})

	t.Run("retries the whole sequence once when the unique index wins a race", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_partners_unique_code"}

		gomock.InOrder(
			deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pgErr),
			deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		mailSent := make(chan struct{})
		deps.notifier.EXPECT().SendRegistrationEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ mailer.RegistrationData) error {
				close(mailSent)
				return nil
			})

		code, err := svc.Register(ctx, validRegisterRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, code)
		<-mailSent
	})

	t.Run("fails when the retry also loses the race", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_partners_unique_code"}

		deps.repo.EXPECT().ExistsByUniqueCode(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pgErr).Times(2)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := svc.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, partnererrors.ErrCodeGenerationExhausted)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		cases := []struct {
			name    string
			mutate  func(req *partner.RegisterPartnerRequest)
			wantErr error
		}{
			{"missing pinCode", func(r *partner.RegisterPartnerRequest) { r.PinCode = "" }, partnererrors.ErrMissingRequiredFields},
			{"whitespace name", func(r *partner.RegisterPartnerRequest) { r.Name = "   " }, partnererrors.ErrMissingRequiredFields},
			{"no phone numbers", func(r *partner.RegisterPartnerRequest) { r.PhoneNumbers = nil }, partnererrors.ErrPhoneNumberRequired},
			{"short phone number", func(r *partner.RegisterPartnerRequest) { r.PhoneNumbers = []string{"12345"} }, partnererrors.ErrInvalidPhoneNumber},
			{"bad email", func(r *partner.RegisterPartnerRequest) { r.Email = "not-an-email" }, partnererrors.ErrInvalidEmail},
			{"bad pin code", func(r *partner.RegisterPartnerRequest) { r.PinCode = "4110" }, partnererrors.ErrInvalidPinCode},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRegisterRequest()
				tc.mutate(&req)

				_, err := svc.Register(ctx, req)

				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestPartnerService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		svc := partner.NewService(deps.db, deps.repo, rdb, deps.notifier)

		cached := []partner.PartnerResponse{
			{ID: uuid.New().String(), Name: "Acme", UniqueCode: "PART-1A2B3C4D"},
		}
		payload, _ := json.Marshal(cached)
		redisMock.ExpectGet("partners:all").SetVal(string(payload))

		resp, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Acme", resp[0].Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		svc := partner.NewService(deps.db, deps.repo, rdb, deps.notifier)

		notes := "call back tomorrow"
		partners := []partner.Partner{
			{
				ID:           uuid.New(),
				Name:         "Acme",
				PhoneNumbers: partner.PhoneNumbers{"9876543210"},
				City:         "Pune",
				State:        "MH",
				PinCode:      "411001",
				Address:      "1 Main St",
				Email:        "a@acme.com",
				UniqueCode:   "PART-1A2B3C4D",
				AdminNotes:   &notes,
				CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		}

		redisMock.ExpectGet("partners:all").RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(partners, nil)

		expected, _ := json.Marshal([]partner.PartnerResponse{
			{
				ID:           partners[0].ID.String(),
				Name:         "Acme",
				PhoneNumbers: []string{"9876543210"},
				City:         "Pune",
				State:        "MH",
				PinCode:      "411001",
				Address:      "1 Main St",
				Email:        "a@acme.com",
				UniqueCode:   "PART-1A2B3C4D",
				AdminNotes:   &notes,
				CreatedAt:    "2025-03-01T12:00:00Z",
			},
		})
		redisMock.ExpectSet("partners:all", expected, 30*time.Minute).SetVal("OK")

		resp, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2025-03-01T12:00:00Z", resp[0].CreatedAt)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("works without redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		deps.repo.EXPECT().FindAll(ctx).Return([]partner.Partner{}, nil)

		resp, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("store errors are surfaced", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db gone"))

		_, err := svc.List(ctx)

		assert.Error(t, err)
	})
}

func TestPartnerService_UpdateNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("writes notes verbatim and leaves other fields alone", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		id := uuid.New()
		existing := &partner.Partner{
			ID:           id,
			Name:         "Acme",
			PhoneNumbers: partner.PhoneNumbers{"9876543210"},
			City:         "Pune",
			State:        "MH",
			PinCode:      "411001",
			Address:      "1 Main St",
			Email:        "a@acme.com",
			UniqueCode:   "PART-1A2B3C4D",
			CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *partner.Partner) error {
				assert.Equal(t, "  keep as typed  ", *p.AdminNotes)
				assert.Equal(t, "PART-1A2B3C4D", p.UniqueCode)
				return nil
			})

		resp, err := svc.UpdateNotes(ctx, id.String(), partner.UpdateNotesRequest{Notes: "  keep as typed  "})

		assert.NoError(t, err)
		assert.Equal(t, "  keep as typed  ", *resp.AdminNotes)
		assert.Equal(t, "2025-03-01T12:00:00Z", resp.CreatedAt)
	})

	t.Run("empty notes clear the field", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		id := uuid.New()
		notes := "old"
		existing := &partner.Partner{ID: id, AdminNotes: &notes}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *partner.Partner) error {
				assert.Nil(t, p.AdminNotes)
				return nil
			})

		resp, err := svc.UpdateNotes(ctx, id.String(), partner.UpdateNotesRequest{Notes: ""})

		assert.NoError(t, err)
		assert.Nil(t, resp.AdminNotes)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gormNotFound())

		_, err := svc.UpdateNotes(ctx, id.String(), partner.UpdateNotesRequest{Notes: "x"})

		assert.ErrorIs(t, err, partnererrors.ErrPartnerNotFound)
	})

	t.Run("malformed id is rejected before the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		_, err := svc.UpdateNotes(ctx, "not-a-uuid", partner.UpdateNotesRequest{Notes: "x"})

		assert.ErrorIs(t, err, partnererrors.ErrInvalidPartnerID)
	})
}

func TestPartnerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.Delete(ctx, id.String()))
	})

	t.Run("repeat delete surfaces not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := partner.NewService(deps.db, deps.repo, nil, deps.notifier)

		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(gormNotFound())

		err := svc.Delete(ctx, id.String())

		assert.ErrorIs(t, err, partnererrors.ErrPartnerNotFound)
	})
}
