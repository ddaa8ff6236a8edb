package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Bet Acceptance (BET) ----

func ErrInsufficientBalance() *AppError {
	return New("BET_001", "Insufficient balance, top-up required", http.StatusPaymentRequired)
}

func ErrInvalidStake() *AppError {
	return New("BET_002", "Stake must be a positive amount", http.StatusBadRequest)
}

func ErrInvalidMineCount() *AppError {
	return New("BET_003", "Mine count must be between 1 and 24", http.StatusBadRequest)
}

// ---- Round State (RND) ----

func ErrRoundInProgress() *AppError {
	return New("RND_001", "A round is already in progress", http.StatusConflict)
}

func ErrNoActiveRound() *AppError {
	return New("RND_002", "No active round for this player", http.StatusNotFound)
}

func ErrRoundSettled() *AppError {
	return New("RND_003", "Round is already settled", http.StatusConflict)
}

func ErrInvalidCell() *AppError {
	return New("RND_004", "Cell index out of range", http.StatusBadRequest)
}

func ErrRoundNotFound() *AppError {
	return New("RND_005", "Round not found", http.StatusNotFound)
}

func ErrSeedNotDisclosed() *AppError {
	return New("RND_006", "Server seed is disclosed only after settlement", http.StatusConflict)
}

// ---- Liquidity & Risk (LIQ) ----

func ErrLiquidityRefusal() *AppError {
	return New("LIQ_001", "Bankroll cannot safely cover this stake", http.StatusUnprocessableEntity)
}

func ErrPayoutsDisabled() *AppError {
	return New("LIQ_002", "Wagering is paused for maintenance", http.StatusServiceUnavailable)
}

// ---- Wheel (WHL) ----

func ErrFreeSpinNotAvailable() *AppError {
	return New("WHL_001", "Free spin not available yet", http.StatusForbidden)
}

func ErrWheelExhausted() *AppError {
	return New("WHL_002", "No wheel prizes remaining today", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidOperatorKey() *AppError {
	return New("AUTH_002", "Invalid operator key", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrNotFound reports a missing resource.
func ErrNotFound(resource string) *AppError {
	return New("SYS_002", fmt.Sprintf("Resource not found: %s", resource), http.StatusNotFound)
}

// Validation returns a BET_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("BET_002", message, http.StatusBadRequest)
}
