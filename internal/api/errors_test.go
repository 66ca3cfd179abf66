package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Run("NormalizeStatus", func(t *testing.T) {
		cases := []struct {
			name    string
			status  int
			body    string
			kind    Kind
			message string
		}{
			{"Unauthorized With Message", http.StatusUnauthorized, `{"message": "jwt expired"}`, KindAuthorization, "jwt expired"},
			{"Unauthorized Without Message", http.StatusUnauthorized, ``, KindAuthorization, "unauthorized"},
			{"Server Without Message", http.StatusInternalServerError, `not json`, KindServer, "server error"},
			{"Server With Message", http.StatusServiceUnavailable, `{"message": "maintenance"}`, KindServer, "maintenance"},
			{"Client With Message", http.StatusConflict, `{"message": "username taken"}`, KindClient, "username taken"},
			{"Client Without Message", http.StatusNotFound, ``, KindClient, "something went wrong"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := normalizeStatus(tc.status, []byte(tc.body))
				if err.Kind != tc.kind {
					t.Errorf("expected kind %s, got %s", tc.kind, err.Kind)
				}
				if err.Message != tc.message {
					t.Errorf("expected message %q, got %q", tc.message, err.Message)
				}
				if err.Status != tc.status {
					t.Errorf("expected status %d, got %d", tc.status, err.Status)
				}
			})
		}
	})

	t.Run("AsError", func(t *testing.T) {
		t.Run("Nil", func(t *testing.T) {
			if AsError(nil) != nil {
				t.Error("expected nil for nil error")
			}
		})

		t.Run("Passthrough", func(t *testing.T) {
			orig := &Error{Kind: KindClient, Message: "nope", Status: 400}
			if AsError(orig) != orig {
				t.Error("expected the same *Error back")
			}
		})

		t.Run("Wrapped", func(t *testing.T) {
			orig := &Error{Kind: KindAuthorization, Message: "expired", Status: 401}
			wrapped := fmt.Errorf("login failed: %w", orig)
			if AsError(wrapped) != orig {
				t.Error("expected the wrapped *Error to be extracted")
			}
		})

		t.Run("Unknown Error Becomes Network", func(t *testing.T) {
			err := AsError(errors.New("dial tcp: timeout"))
			if err.Kind != KindNetwork {
				t.Errorf("expected network kind, got %s", err.Kind)
			}
		})
	})

	t.Run("IsAuthorization", func(t *testing.T) {
		if !IsAuthorization(&Error{Kind: KindAuthorization}) {
			t.Error("expected true for authorization error")
		}
		if IsAuthorization(&Error{Kind: KindServer}) {
			t.Error("expected false for server error")
		}
		if IsAuthorization(nil) {
			t.Error("expected false for nil")
		}
	})

	t.Run("Error String", func(t *testing.T) {
		withStatus := &Error{Kind: KindServer, Message: "boom", Status: 500}
		if withStatus.Error() != "server error (status 500): boom" {
			t.Errorf("unexpected error string: %s", withStatus.Error())
		}

		withoutStatus := &Error{Kind: KindNetwork, Message: "network error"}
		if withoutStatus.Error() != "network error: network error" {
			t.Errorf("unexpected error string: %s", withoutStatus.Error())
		}
	})
}
