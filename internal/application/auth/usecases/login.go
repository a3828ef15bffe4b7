package usecases

import (
	"context"

	"faultdesk/internal/domain/user"
	infraAuth "faultdesk/internal/infrastructure/auth"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expiresIn"`
	User      UserResult `json:"user"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer signs an access token for an authenticated principal.
type TokenIssuer interface {
	Generate(p authorization.Principal) (*infraAuth.IssuedToken, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		// Same answer for unknown user and wrong password.
		uc.logger.Warnw("login failed: user lookup", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !u.IsActive() {
		uc.logger.Warnw("login rejected: inactive account", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed: password mismatch", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		// Login still succeeds; a stale last-login timestamp is tolerable.
		uc.logger.Warnw("failed to record login time", "username", cmd.Username, "error", err)
	}

	issued, err := uc.tokens.Generate(u.Principal())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "username", u.Username(), "role", u.Role())

	return &LoginResult{
		Token:     issued.Token,
		ExpiresIn: issued.ExpiresIn,
		User:      toUserResult(u),
	}, nil
}
