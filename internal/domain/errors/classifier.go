package errors

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// Text matching on provider messages is best-effort: structured evidence
// (transport errors, status codes) is consulted first and free text last.

var statusTokenPattern = regexp.MustCompile(`\b(401|409|429)\b`)

var transportErrnos = []syscall.Errno{
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ECONNABORTED,
	syscall.ENETUNREACH,
	syscall.EHOSTUNREACH,
	syscall.ETIMEDOUT,
}

// evidence is what a raw failure tells us, extracted once per classification.
type evidence struct {
	transport bool
	cancelled bool
	status    int
	text      string
}

func collectEvidence(err error) evidence {
	text := strings.ToLower(err.Error())
	cancelled := errors.Is(err, context.Canceled)

	return evidence{
		transport: !cancelled && isTransportFailure(err),
		cancelled: cancelled,
		status:    statusHint(err, text),
		text:      text,
	}
}

// ClassifyAuthFailure maps any failure from the remote provider to exactly one domain error.
// Errors that are already domain errors are returned unchanged.
func ClassifyAuthFailure(err error) error {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return err
	}

	return ErrorForKind(classifyAuth(collectEvidence(err))).WithDetails(err.Error())
}

func classifyAuth(ev evidence) Kind {
	switch {
	case ev.transport:
		return KindNetwork
	case ev.cancelled:
		return KindUnknown
	case mentionsUnconfirmedEmail(ev.text):
		// Signing in before confirming the email is not a credential problem.
		return KindUnknown
	}

	switch ev.status {
	case 429:
		return KindRateLimited
	case 401:
		return KindInvalidCredentials
	case 409:
		return KindEmailAlreadyInUse
	}

	t := ev.text
	switch {
	case containsAny(t, "invalid login", "invalid credentials", "invalid email or password", "invalid_grant"):
		return KindInvalidCredentials
	case strings.Contains(t, "email") && containsAny(t, "already", "registered", "exists"):
		return KindEmailAlreadyInUse
	case strings.Contains(t, "password") && containsAny(t, "weak", "too short", "length"):
		return KindWeakPassword
	case mentionsRateLimit(t):
		return KindRateLimited
	case mentionsNetwork(t):
		return KindNetwork
	default:
		return KindUnknown
	}
}

// ClassifyPasswordResetFailure is the narrower classifier used by the password
// reset flow. It only yields invalid_email, too_many_requests, network or unknown.
func ClassifyPasswordResetFailure(err error) error {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind() {
		case KindInvalidEmail, KindTooManyRequests, KindNetwork, KindUnknown:
			return err
		default:
			return ErrUnknown.WithDetails(err.Error())
		}
	}

	return ErrorForKind(classifyPasswordReset(collectEvidence(err))).WithDetails(err.Error())
}

func classifyPasswordReset(ev evidence) Kind {
	t := ev.text

	switch {
	case ev.transport:
		return KindNetwork
	case ev.cancelled:
		return KindUnknown
	case strings.Contains(t, "email") && containsAny(t, "invalid", "malformed"):
		return KindInvalidEmail
	case ev.status == 429 || mentionsRateLimit(t):
		return KindTooManyRequests
	case mentionsNetwork(t):
		return KindNetwork
	default:
		return KindUnknown
	}
}

func isTransportFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	for _, errno := range transportErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return isTLSFailure(err)
}

func isTLSFailure(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}

	var headerErr tls.RecordHeaderError
	if errors.As(err, &headerErr) {
		return true
	}

	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return true
	}

	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}

	var invalidErr x509.CertificateInvalidError

	return errors.As(err, &invalidErr)
}

// statusHint prefers a structured status code and falls back to a bare
// status token in the message text.
func statusHint(err error, text string) int {
	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}

	if token := statusTokenPattern.FindString(text); token != "" {
		status, convErr := strconv.Atoi(token)
		if convErr == nil {
			return status
		}
	}

	return 0
}

func mentionsUnconfirmedEmail(t string) bool {
	return containsAny(t,
		"email not confirmed",
		"not confirmed",
		"confirm your email",
		"signup requires email confirmation",
		"confirm your signup",
	) || (strings.Contains(t, "email") && strings.Contains(t, "confirm"))
}

func mentionsRateLimit(t string) bool {
	return containsAny(t, "rate", "too many", "over_request_rate_limit")
}

func mentionsNetwork(t string) bool {
	return containsAny(t, "network", "offline", "timed out", "timeout")
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
