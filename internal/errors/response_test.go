package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(LedgerOverdraftExceeded, s.traceID)

	s.Equal("LEDGER_003", response.Error.Code)
	s.Equal("Operation would exceed the overdraft limit", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestFromError_LedgerError() {
	err := fmt.Errorf("withdraw: %w", ErrOverdraftExceeded.Withf("balance would be %s", "-1200.00"))

	response := FromError(err, s.traceID)

	s.Equal(string(LedgerOverdraftExceeded), response.Error.Code)
	s.Equal([]string{"balance would be -1200.00"}, response.Error.Details)
	s.True(response.IsClientError())
}

func (s *ResponseTestSuite) TestFromError_ForeignErrorHidesDetails() {
	response := FromError(stderrors.New("pq: connection reset"), s.traceID)

	s.Equal(string(SystemInternalError), response.Error.Code)
	s.Empty(response.Error.Details)
	s.False(response.IsClientError())
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ResourceNotFound, s.traceID, "account id 7")

	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("RESOURCE_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(LoanAlreadyRepaid, s.traceID)
	s.Equal("[LOAN_004] Loan is already fully repaid (trace: "+s.traceID+")", response.String())
}
