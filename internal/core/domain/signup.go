package domain

// SignupRequest carries everything the signup form submits. The avatar is
// optional and is never sent to the registration endpoint; it is uploaded
// separately after login succeeds.
type SignupRequest struct {
	Firstname       string  `json:"firstname" validate:"required,min=2"`
	Lastname        string  `json:"lastname" validate:"required,min=2"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=3"`
	ConfirmPassword string  `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            Role    `json:"role" validate:"required,oneof=CLIENT SELLER"`
	Avatar          *Avatar `json:"-"`
}

// Avatar is a user-selected profile image held in memory until the upload
// attempt.
type Avatar struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SignupStage is a state of the signup orchestration.
type SignupStage string

const (
	StageIdle            SignupStage = "idle"
	StageSubmitting      SignupStage = "submitting"
	StageSignupFailed    SignupStage = "signup_failed"
	StageSignedUp        SignupStage = "signed_up"
	StageLoggingIn       SignupStage = "logging_in"
	StageLoginFailed     SignupStage = "login_failed"
	StageLoggedIn        SignupStage = "logged_in"
	StageAttachingAvatar SignupStage = "attaching_avatar"
	StageComplete        SignupStage = "complete"
)

// signupTransitions defines the allowed orchestration transitions. Avatar
// upload failure has no terminal state of its own: attaching_avatar always
// proceeds to complete.
var signupTransitions = map[SignupStage][]SignupStage{
	StageIdle:            {StageSubmitting},
	StageSubmitting:      {StageSignupFailed, StageSignedUp},
	StageSignedUp:        {StageLoggingIn},
	StageLoggingIn:       {StageLoginFailed, StageLoggedIn},
	StageLoggedIn:        {StageAttachingAvatar, StageComplete},
	StageAttachingAvatar: {StageComplete},
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s SignupStage) CanTransitionTo(next SignupStage) bool {
	for _, allowed := range signupTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the orchestration stops at this stage.
func (s SignupStage) Terminal() bool {
	return s == StageSignupFailed || s == StageLoginFailed || s == StageComplete
}

// SignupOutcome is the result of one orchestration run. Err is set only for
// the failure stages; Session is populated once login succeeded. The avatar
// fields are observability only: an upload failure is never surfaced and
// never prevents Stage from reaching complete.
type SignupOutcome struct {
	Stage           SignupStage
	UserID          string
	Session         Session
	Err             error
	AvatarAttempted bool
	AvatarFailed    bool
}
