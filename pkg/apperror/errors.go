package apperror

import (
	"fmt"
	"net/http"
	"strings"
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

// SearchTerm is a key/value pair appended to not-found messages so the
// caller can see which lookup failed.
type SearchTerm struct {
	Key   string
	Value any
}

// Term builds a SearchTerm.
func Term(key string, value any) SearchTerm {
	return SearchTerm{Key: key, Value: value}
}

func withSearchTerms(message string, terms []SearchTerm) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.Value == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", t.Key, t.Value))
	}
	if len(parts) == 0 {
		return message
	}
	return message + " - " + strings.Join(parts, ", ")
}

// ---- Wallet Business Logic (WLT) ----

// ErrUserNotFound reports that the referenced user has no wallet context.
func ErrUserNotFound(terms ...SearchTerm) *AppError {
	return New("WLT_001", withSearchTerms("no users found using the search terms provided", terms), http.StatusNotFound)
}

// ErrWalletNotFound reports that no live wallet matched the given scoping.
func ErrWalletNotFound(terms ...SearchTerm) *AppError {
	return New("WLT_002", withSearchTerms("no wallets found using the search terms provided", terms), http.StatusNotFound)
}

// ErrDuplicatedSurname reports a surname collision among a user's live wallets.
func ErrDuplicatedSurname(surname string) *AppError {
	return New("WLT_003", fmt.Sprintf("the given wallet surname already had been taken: %s", surname), http.StatusConflict)
}

// ErrDefaultWalletDeletion reports an attempt to delete the default wallet.
func ErrDefaultWalletDeletion(id fmt.Stringer, surname string) *AppError {
	return New(
		"WLT_004",
		fmt.Sprintf("it is impossible to delete the wallet (id: %s, surname: %s) while it is the default one", id, surname),
		http.StatusBadRequest,
	)
}

// ErrNullPayload reports a mutating command whose payload was absent.
func ErrNullPayload(payload string) *AppError {
	return New("WLT_005", fmt.Sprintf("the %s payload can't be null", payload), http.StatusConflict)
}

// Validation returns a bad-request error for malformed input.
func Validation(message string) *AppError {
	return New("WLT_400", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// Unexpected wraps any collaborator failure not covered by the kinds above.
func Unexpected(err error) *AppError {
	return Wrap("SYS_001", "unexpected error", http.StatusInternalServerError, err)
}
