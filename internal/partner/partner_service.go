package partner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/archit-sahay/Aibo-Meikan/internal/mailer"
	partnererrors "github.com/archit-sahay/Aibo-Meikan/internal/partner/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	partnersCacheKey = "partners:all"
	partnersCacheTTL = 30 * time.Minute
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^\+?\d{10,15}$`)
	pinCodePattern = regexp.MustCompile(`^\d{6}$`)
	phoneStripper  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

//go:generate mockgen -source=partner_service.go -destination=mock/partner_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterPartnerRequest) (string, error)
	List(ctx context.Context) ([]PartnerResponse, error)
	UpdateNotes(ctx context.Context, id string, req UpdateNotesRequest) (PartnerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      *redis.Client
	notifier mailer.Notifier
	generate func() (string, error)
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, notifier mailer.Notifier) Service {
	return NewServiceWithGenerator(db, repo, rdb, notifier, GenerateUniqueCode)
}

// NewServiceWithGenerator allows tests to force collisions by swapping
// out the code source.
func NewServiceWithGenerator(
	db *sql.DB,
	repo Repository,
	rdb *redis.Client,
	notifier mailer.Notifier,
	generate func() (string, error),
) Service {
	return &service{
		db:       db,
		repo:     repo,
		rdb:      rdb,
		notifier: notifier,
		generate: generate,
		logger:   zap.L().Named("partner.service"),
	}
}

func validateRegisterRequest(req *RegisterPartnerRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.PinCode = strings.TrimSpace(req.PinCode)
	req.Address = strings.TrimSpace(req.Address)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" || req.City == "" || req.State == "" || req.PinCode == "" ||
		req.Address == "" || req.Email == "" {
		return partnererrors.ErrMissingRequiredFields
	}

	if len(req.PhoneNumbers) == 0 {
		return partnererrors.ErrPhoneNumberRequired
	}
	for i, phone := range req.PhoneNumbers {
		cleaned := phoneStripper.Replace(strings.TrimSpace(phone))
		if !phonePattern.MatchString(cleaned) {
			return partnererrors.ErrInvalidPhoneNumber
		}
		req.PhoneNumbers[i] = cleaned
	}

	if !emailPattern.MatchString(req.Email) {
		return partnererrors.ErrInvalidEmail
	}

	if !pinCodePattern.MatchString(req.PinCode) {
		return partnererrors.ErrInvalidPinCode
	}

	return nil
}

// allocateCode draws random codes until one is free in the store, up to
// maxCodeAttempts. Exhaustion means every draw collided, which in
// practice signals a broken unique index rather than bad luck.
func (s *service) allocateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return "", err
		}

		exists, err := s.repo.ExistsByUniqueCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}

		s.logger.Warn("unique code collision",
			zap.String("code", code),
			zap.Int("attempt", attempt+1),
		)
	}

	return "", partnererrors.ErrCodeGenerationExhausted
}

func (s *service) Register(ctx context.Context, req RegisterPartnerRequest) (string, error) {
	if err := validateRegisterRequest(&req); err != nil {
		return "", err
	}

	created, err := s.createWithFreshCode(ctx, req)
	if errors.Is(err, partnererrors.ErrUniqueCodeConflict) {
		// The existence check and the insert are not atomic: a concurrent
		// registration can win the same code in between. The unique index
		// caught it, so run the whole check-generate-insert sequence once more.
		s.logger.Warn("unique code lost insert race, retrying registration")
		created, err = s.createWithFreshCode(ctx, req)
		if errors.Is(err, partnererrors.ErrUniqueCodeConflict) {
			return "", partnererrors.ErrCodeGenerationExhausted
		}
	}
	if err != nil {
		return "", err
	}

	s.invalidateCache(ctx)

	// Best-effort notification: a failed send is logged and swallowed,
	// the registration already succeeded.
	go s.sendRegistrationEmail(*created)

	return created.UniqueCode, nil
}

func (s *service) createWithFreshCode(ctx context.Context, req RegisterPartnerRequest) (*Partner, error) {
	code, err := s.allocateCode(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Partner{
		ID:           uuid.New(),
		Name:         req.Name,
		PhoneNumbers: req.PhoneNumbers,
		City:         req.City,
		State:        req.State,
		PinCode:      req.PinCode,
		Address:      req.Address,
		Email:        req.Email,
		UniqueCode:   code,
		CreatedAt:    time.Now().UTC(),
	}

	if err := qtx.Create(ctx, p); err != nil {
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) sendRegistrationEmail(p Partner) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.notifier.SendRegistrationEmail(ctx, mailer.RegistrationData{
		Name:         p.Name,
		Email:        p.Email,
		UniqueCode:   p.UniqueCode,
		PhoneNumbers: p.PhoneNumbers,
		City:         p.City,
		State:        p.State,
		PinCode:      p.PinCode,
		Address:      p.Address,
	})
	if err != nil {
		s.logger.Error("registration email failed",
			zap.String("unique_code", p.UniqueCode),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context) ([]PartnerResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, partnersCacheKey).Result()
		if err == nil {
			var resp []PartnerResponse
			if uerr := json.Unmarshal([]byte(cached), &resp); uerr == nil {
				return resp, nil
			} else {
				s.logger.Warn("corrupt partners cache entry, falling through", zap.Error(uerr))
			}
		} else if err != redis.Nil {
			s.logger.Warn("partners cache read failed", zap.Error(err))
		}
	}

	partners, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := mapToListResponse(partners)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, partnersCacheKey, payload, partnersCacheTTL).Err(); err != nil {
				s.logger.Warn("partners cache write failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) UpdateNotes(ctx context.Context, id string, req UpdateNotesRequest) (PartnerResponse, error) {
	partnerID, err := uuid.Parse(id)
	if err != nil {
		return PartnerResponse{}, partnererrors.ErrInvalidPartnerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PartnerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, partnerID)
	if err != nil {
		return PartnerResponse{}, mapRepositoryError(err)
	}

	// Notes are written verbatim; an empty string clears them to NULL.
	if req.Notes == "" {
		p.AdminNotes = nil
	} else {
		notes := req.Notes
		p.AdminNotes = &notes
	}

	if err := qtx.Update(ctx, p); err != nil {
		return PartnerResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PartnerResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	partnerID, err := uuid.Parse(id)
	if err != nil {
		return partnererrors.ErrInvalidPartnerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, partnerID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, partnersCacheKey).Err(); err != nil {
		s.logger.Warn("partners cache invalidation failed", zap.Error(err))
	}
}
