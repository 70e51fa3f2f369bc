// internal/adapters/rest/status.go
package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zamgas/zamgas-client/internal/domain"
)

const maxStatusDepth = 3

// pawaPay answers a status lookup with FOUND / NOT_FOUND and puts the deposit under data.
const (
	lookupFound    = "FOUND"
	lookupNotFound = "NOT_FOUND"
)

type statusEnvelope struct {
	DepositID       string          `json:"depositId"`
	DepositIDAlt    string          `json:"deposit_id"`
	Status          json.RawMessage `json:"status"`
	Data            json.RawMessage `json:"data"`
	Message         string          `json:"message"`
	FailureReason   *reasonBody     `json:"failureReason"`
	RejectionReason *reasonBody     `json:"rejectionReason"`
}

type reasonBody struct {
	FailureCode      string `json:"failureCode"`
	FailureMessage   string `json:"failureMessage"`
	RejectionCode    string `json:"rejectionCode"`
	RejectionMessage string `json:"rejectionMessage"`
}

// ParseDepositStatus reads the status endpoint body. The status is either a
// string, an object holding the deposit, or FOUND with the deposit under data.
// NOT_FOUND reads as SUBMITTED so polling keeps going.
func ParseDepositStatus(raw []byte) (*domain.DepositStatus, error) {
	st, err := parseStatus(raw, 0)
	if err != nil {
		return nil, err
	}
	st.Status = domain.GatewayStatus(strings.ToUpper(strings.TrimSpace(string(st.Status))))
	if st.Status == "" {
		return nil, errors.New("deposit status: response has no status")
	}
	if st.Status == lookupNotFound {
		st.Status = domain.GatewaySubmitted
	}
	return st, nil
}

func parseStatus(raw []byte, depth int) (*domain.DepositStatus, error) {
	if depth > maxStatusDepth {
		return nil, errors.New("deposit status: response nested too deep")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("deposit status: %w", err)
		}
		if len(list) == 0 {
			return &domain.DepositStatus{Status: lookupNotFound}, nil
		}
		return parseStatus(list[0], depth+1)
	}

	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("deposit status: %w", err)
	}
	st := &domain.DepositStatus{DepositID: env.DepositID, Message: env.message()}
	if st.DepositID == "" {
		st.DepositID = env.DepositIDAlt
	}

	status := bytes.TrimSpace(env.Status)
	switch {
	case len(status) > 0 && status[0] == '"':
		var s string
		if err := json.Unmarshal(status, &s); err != nil {
			return nil, fmt.Errorf("deposit status: %w", err)
		}
		if strings.EqualFold(s, lookupFound) && len(env.Data) > 0 {
			return merge(st, env.Data, depth)
		}
		st.Status = domain.GatewayStatus(s)
	case len(status) > 0 && status[0] == '{':
		return merge(st, status, depth)
	case len(env.Data) > 0:
		return merge(st, env.Data, depth)
	}
	return st, nil
}

// merge parses the nested deposit and keeps outer fields it does not set.
func merge(outer *domain.DepositStatus, inner []byte, depth int) (*domain.DepositStatus, error) {
	st, err := parseStatus(inner, depth+1)
	if err != nil {
		return nil, err
	}
	if st.DepositID == "" {
		st.DepositID = outer.DepositID
	}
	if st.Message == "" {
		st.Message = outer.Message
	}
	return st, nil
}

func (e statusEnvelope) message() string {
	if r := e.FailureReason; r != nil {
		if r.FailureMessage != "" {
			return r.FailureMessage
		}
		if r.FailureCode != "" {
			return r.FailureCode
		}
	}
	if r := e.RejectionReason; r != nil {
		if r.RejectionMessage != "" {
			return r.RejectionMessage
		}
		if r.RejectionCode != "" {
			return r.RejectionCode
		}
	}
	return e.Message
}
