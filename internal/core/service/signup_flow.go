package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/core/authctx"
	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/ports"
)

// SignupFlow orchestrates signup -> login -> avatar upload as an explicit
// state machine. The remote calls of one run are strictly sequenced: login
// is never attempted before signup succeeded, the avatar upload never before
// login succeeded.
type SignupFlow struct {
	creds    ports.CredentialExchange
	media    ports.MediaAPI
	validate *validator.Validate
	log      zerolog.Logger
}

func NewSignupFlow(creds ports.CredentialExchange, media ports.MediaAPI, log zerolog.Logger) *SignupFlow {
	return &SignupFlow{
		creds:    creds,
		media:    media,
		validate: validator.New(),
		log:      log,
	}
}

// Run drives one orchestration to a terminal stage. A request that fails
// validation (including password != confirmation) never leaves idle and never
// reaches the remote API.
func (f *SignupFlow) Run(ctx context.Context, sid string, req domain.SignupRequest) domain.SignupOutcome {
	stage := domain.StageIdle

	if err := f.validate.Struct(req); err != nil {
		return domain.SignupOutcome{
			Stage: stage,
			Err:   fmt.Errorf("%w: %v", domain.ErrValidationRejected, err),
		}
	}

	if err := f.advance(&stage, domain.StageSubmitting); err != nil {
		return domain.SignupOutcome{Stage: stage, Err: err}
	}

	userID, err := f.creds.Signup(ctx, req)
	if err != nil {
		_ = f.advance(&stage, domain.StageSignupFailed)
		f.log.Warn().Err(err).Str("email", req.Email).Msg("signup failed")
		return domain.SignupOutcome{Stage: stage, Err: err}
	}
	if err := f.advance(&stage, domain.StageSignedUp); err != nil {
		return domain.SignupOutcome{Stage: stage, UserID: userID, Err: err}
	}

	// Automatic login with the credentials just submitted. A failure here is
	// terminal: the account exists server-side but the user is sent back to
	// the login view instead of retrying silently.
	if err := f.advance(&stage, domain.StageLoggingIn); err != nil {
		return domain.SignupOutcome{Stage: stage, UserID: userID, Err: err}
	}

	sess, err := f.creds.Login(ctx, sid, req.Email, req.Password)
	if err != nil {
		_ = f.advance(&stage, domain.StageLoginFailed)
		f.log.Warn().Err(err).Str("user_id", userID).Msg("post-signup login failed")
		return domain.SignupOutcome{Stage: stage, UserID: userID, Err: err}
	}
	if err := f.advance(&stage, domain.StageLoggedIn); err != nil {
		return domain.SignupOutcome{Stage: stage, UserID: userID, Session: sess, Err: err}
	}

	outcome := domain.SignupOutcome{UserID: userID, Session: sess}

	if req.Avatar != nil {
		if err := f.advance(&stage, domain.StageAttachingAvatar); err != nil {
			outcome.Stage = stage
			outcome.Err = err
			return outcome
		}
		outcome.AvatarAttempted = true

		// Best-effort: the identity already exists and the session is live,
		// so an upload failure is logged and swallowed, never surfaced.
		uploadCtx := authctx.WithToken(ctx, sess.Token)
		if err := f.media.UploadAvatar(uploadCtx, userID, *req.Avatar); err != nil {
			outcome.AvatarFailed = true
			f.log.Warn().Err(err).Str("user_id", userID).Msg("avatar upload failed, continuing")
		}
	}

	_ = f.advance(&stage, domain.StageComplete)
	outcome.Stage = stage
	return outcome
}

// advance moves the run to next after checking the transition table. An
// illegal transition is an orchestrator bug; the run stops where it is.
func (f *SignupFlow) advance(stage *domain.SignupStage, next domain.SignupStage) error {
	if !stage.CanTransitionTo(next) {
		f.log.Error().
			Str("from", string(*stage)).
			Str("to", string(next)).
			Msg("illegal signup transition")
		return fmt.Errorf("%w: illegal transition %s -> %s", domain.ErrServer, *stage, next)
	}
	*stage = next
	return nil
}
