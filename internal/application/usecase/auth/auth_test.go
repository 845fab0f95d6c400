package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

type stubUserRepo struct {
	users     map[string]*entity.User
	createErr error
	created   *entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.Email] = user
	r.created = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// stubPasswordService records hashes as "hashed:" + password so verification
// is trivial to reason about in tests.
type stubPasswordService struct{}

func (s *stubPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *stubPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *stubPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type stubTokenService struct {
	invalidated []string
	valid       map[string]adapter.TokenClaims
	generateErr error
	pairCount   int
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{valid: make(map[string]adapter.TokenClaims)}
}

func (s *stubTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	s.pairCount++
	return &adapter.TokenPair{
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + email,
	}, nil
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.valid[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &claims, nil
}

func (s *stubTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.valid[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &claims, nil
}

func (s *stubTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	delete(s.valid, token)
	return nil
}

func TestRegisterUser(t *testing.T) {
	t.Run("creates user with hashed password and issues tokens", func(t *testing.T) {
		repo := newStubUserRepo()
		tokens := newStubTokenService()
		uc := NewRegisterUserUseCase(repo, &stubPasswordService{}, tokens)

		out, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", out.User.Email)
		assert.Equal(t, "hashed:supersecret", repo.created.PasswordHash)
		assert.Equal(t, "access-ana@example.com", out.Tokens.AccessToken)
	})

	t.Run("rejects weak password before touching the repository", func(t *testing.T) {
		repo := newStubUserRepo()
		uc := NewRegisterUserUseCase(repo, &stubPasswordService{}, newStubTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "short",
		})

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeWeakPassword, authErr.Code)
		assert.Nil(t, repo.created)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newStubUserRepo()
		repo.users["ana@example.com"] = entity.NewUser("ana@example.com", "Ana", "hashed:supersecret")
		uc := NewRegisterUserUseCase(repo, &stubPasswordService{}, newStubTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "supersecret",
		})

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeEmailAlreadyExists, authErr.Code)
	})
}

func TestLoginUser(t *testing.T) {
	t.Run("returns user and tokens on valid credentials", func(t *testing.T) {
		repo := newStubUserRepo()
		repo.users["ana@example.com"] = entity.NewUser("ana@example.com", "Ana", "hashed:supersecret")
		uc := NewLoginUserUseCase(repo, &stubPasswordService{}, newStubTokenService())

		out, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ana@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana", out.User.Name)
		assert.NotEmpty(t, out.Tokens.RefreshToken)
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		repo := newStubUserRepo()
		repo.users["ana@example.com"] = entity.NewUser("ana@example.com", "Ana", "hashed:supersecret")
		uc := NewLoginUserUseCase(repo, &stubPasswordService{}, newStubTokenService())

		_, errUnknown := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})
		_, errWrong := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ana@example.com",
			Password: "wrongpassword",
		})

		var authErr *domainerror.AuthError
		require.ErrorAs(t, errUnknown, &authErr)
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authErr.Code)
		require.ErrorAs(t, errWrong, &authErr)
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authErr.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates the pair and invalidates the old refresh token", func(t *testing.T) {
		tokens := newStubTokenService()
		userID := uuid.New()
		tokens.valid["old-refresh"] = adapter.TokenClaims{
			UserID:    userID,
			Email:     "ana@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "old-refresh"})

		require.NoError(t, err)
		assert.Equal(t, []string{"old-refresh"}, tokens.invalidated)
		assert.Equal(t, "refresh-ana@example.com", out.Tokens.RefreshToken)
	})

	t.Run("rejects an unknown refresh token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newStubTokenService())

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "bogus"})

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeInvalidToken, authErr.Code)
	})
}

func TestLogoutUser(t *testing.T) {
	t.Run("invalidates the refresh token", func(t *testing.T) {
		tokens := newStubTokenService()
		tokens.valid["refresh"] = adapter.TokenClaims{UserID: uuid.New()}
		uc := NewLogoutUserUseCase(tokens)

		err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, []string{"refresh"}, tokens.invalidated)
	})

	t.Run("missing token is a no-op", func(t *testing.T) {
		tokens := newStubTokenService()
		uc := NewLogoutUserUseCase(tokens)

		err := uc.Execute(context.Background(), LogoutUserInput{})

		require.NoError(t, err)
		assert.Empty(t, tokens.invalidated)
	})
}
