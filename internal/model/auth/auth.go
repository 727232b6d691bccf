package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

const pinLength = 4

type userStorage interface {
	GetUser(ctx context.Context) (user.Record, error)
	UpdateUserPin(ctx context.Context, id int64, pinHash string) error
}

type config interface {
	SessionSecret() string
	SessionTTL() time.Duration
}

type claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Service struct {
	storage userStorage
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// New builds the gate. Without a configured secret a random one is used,
// so sessions do not survive a restart.
func New(config config, storage userStorage) (*Service, error) {
	secret := []byte(config.SessionSecret())
	if len(secret) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, errors.Wrap(err, "generate session secret")
		}
		secret = []byte(hex.EncodeToString(buf))
		logger.Warn("session secret is not configured, sessions will reset on restart")
	}
	return &Service{
		storage: storage,
		secret:  secret,
		ttl:     config.SessionTTL(),
		now:     time.Now,
	}, nil
}

// ValidPin reports whether pin is exactly four ASCII digits.
func ValidPin(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func HashPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash pin")
	}
	return string(hash), nil
}

func pinMatches(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// Login checks pin and returns a signed session token.
func (s *Service) Login(ctx context.Context, pin string) (string, error) {
	rec, err := s.storage.GetUser(ctx)
	if err != nil {
		var nf *customerr.NotFoundError
		if errors.As(err, &nf) {
			return "", &customerr.AuthError{Err: "Invalid PIN"}
		}
		return "", errors.Wrap(err, "login")
	}
	if !pinMatches(rec.PinHash, pin) {
		logger.Info("login rejected")
		return "", &customerr.AuthError{Err: "Invalid PIN"}
	}
	return s.issue(rec.ID)
}

func (s *Service) issue(userID int64) (string, error) {
	issuedAt := s.now()
	registered := jwt.RegisteredClaims{
		Subject:  strconv.FormatInt(userID, 10),
		IssuedAt: jwt.NewNumericDate(issuedAt),
	}
	if s.ttl > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		UserID:           userID,
		RegisteredClaims: registered,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session")
	}
	return signed, nil
}

// Verify parses a session token. Any failure is reported as AuthError.
func (s *Service) Verify(token string) (Session, error) {
	if token == "" {
		return Session{}, &customerr.AuthError{Err: "Unauthorized"}
	}
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		logger.Debug("session rejected", zap.Error(err))
		return Session{}, &customerr.AuthError{Err: "Unauthorized"}
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.UserID == 0 {
		return Session{}, &customerr.AuthError{Err: "Unauthorized"}
	}
	return Session{UserID: c.UserID}, nil
}

// ChangePin replaces the PIN after checking the current one. On any error
// the stored PIN is left as it was.
func (s *Service) ChangePin(ctx context.Context, session Session, currentPin, newPin string) error {
	rec, err := s.storage.GetUser(ctx)
	if err != nil {
		return errors.Wrap(err, "change pin")
	}
	if rec.ID != session.UserID {
		return &customerr.AuthError{Err: "Unauthorized"}
	}
	if !pinMatches(rec.PinHash, currentPin) {
		return &customerr.AuthError{Err: "Invalid current PIN"}
	}
	if !ValidPin(newPin) {
		return &customerr.ValidationError{Err: "New PIN must be 4 digits"}
	}

	hash, err := HashPin(newPin)
	if err != nil {
		return errors.Wrap(err, "change pin")
	}
	if err = s.storage.UpdateUserPin(ctx, rec.ID, hash); err != nil {
		return errors.Wrap(err, "change pin")
	}
	logger.Info("pin changed", zap.Int64("userID", rec.ID))
	return nil
}
