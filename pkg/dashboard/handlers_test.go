package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/xrpl-custody/custody-sdk-go/pkg/custody"
	"github.com/xrpl-custody/custody-sdk-go/pkg/history"
	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
)

// fakeCustody implements CustodyAPI with per-method overrides. Methods
// without an override return an empty JSON object.
type fakeCustody struct {
	proposeFunc func(ctx context.Context, envelope *intent.Envelope) (*custody.ProposeIntentResult, error)
	whoAmIFunc  func(ctx context.Context, domainID string) (*custody.CurrentUser, error)
	listFunc    func(ctx context.Context, domainID string) (json.RawMessage, error)
	stateFunc   func(ctx context.Context, requestID string, domainID string) (json.RawMessage, error)

	proposed []*intent.Envelope
}

func (f *fakeCustody) ProposeIntent(ctx context.Context, envelope *intent.Envelope) (*custody.ProposeIntentResult, error) {
	f.proposed = append(f.proposed, envelope)
	if f.proposeFunc != nil {
		return f.proposeFunc(ctx, envelope)
	}
	return &custody.ProposeIntentResult{
		RequestID: "req-1",
		Response:  json.RawMessage(`{"requestId":"req-1"}`),
	}, nil
}

func (f *fakeCustody) WhoAmI(ctx context.Context, domainID string) (*custody.CurrentUser, error) {
	if f.whoAmIFunc != nil {
		return f.whoAmIFunc(ctx, domainID)
	}
	return &custody.CurrentUser{UserID: "user-1", DomainID: domainID}, nil
}

func (f *fakeCustody) GetIntent(ctx context.Context, intentID string, domainID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) RequestState(ctx context.Context, requestID string, domainID string) (json.RawMessage, error) {
	if f.stateFunc != nil {
		return f.stateFunc(ctx, requestID, domainID)
	}
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) ListAccounts(ctx context.Context, domainID string) (json.RawMessage, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, domainID)
	}
	return json.RawMessage(`{"items":[]}`), nil
}

func (f *fakeCustody) AccountBalances(ctx context.Context, accountID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) AccountAddresses(ctx context.Context, accountID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) ListDomains(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) ListTickers(ctx context.Context, ledgerIDs []string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) GetTicker(ctx context.Context, tickerID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) ListTransactions(ctx context.Context, domainID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) GetTransaction(ctx context.Context, transactionID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) ListTransfers(ctx context.Context, filters custody.TransferQuery) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (f *fakeCustody) ListVaults(ctx context.Context, domainID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func testServer(t *testing.T, fake *fakeCustody) (*Server, *history.Log) {
	t.Helper()
	log := history.NewLog(history.NewMemoryStore())
	counter := 0
	log.NewID = func() string {
		counter++
		return fmt.Sprintf("rec-%d", counter)
	}

	sequence := 0
	server, err := NewServer(Config{
		Custody: fake,
		History: log,
		Builder: intent.Builder{
			Now: func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
			NewID: func() string {
				sequence++
				return fmt.Sprintf("id-%d", sequence)
			},
		},
		Logger:      zerolog.Nop(),
		MPTLedgerID: "xrpl-testnet",
	})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server, log
}

func post(t *testing.T, handler http.Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var response errorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode error body %q: %v", recorder.Body.String(), err)
	}
	return response.Error
}

func TestNewServerRequiresCustody(t *testing.T) {
	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected error without custody client")
	}
}

func TestAccountsListRequiresDomainID(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})
	handler := server.Handler()

	recorder := post(t, handler, "/api/accounts/list", `{}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if message := decodeError(t, recorder); message != "domainId is required" {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestAccountsListPassesBackendBodyThrough(t *testing.T) {
	fake := &fakeCustody{
		listFunc: func(ctx context.Context, domainID string) (json.RawMessage, error) {
			if domainID != "domain-1" {
				t.Errorf("unexpected domain id: %s", domainID)
			}
			return json.RawMessage(`{"items":[{"id":"account-1"}]}`), nil
		},
	}
	server, _ := testServer(t, fake)

	recorder := post(t, server.Handler(), "/api/accounts/list", `{"domainId":"domain-1"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if recorder.Body.String() != `{"items":[{"id":"account-1"}]}` {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}

func TestInvalidJSONBodyIsRejected(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})

	recorder := post(t, server.Handler(), "/api/accounts/list", `{not json`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if message := decodeError(t, recorder); message != "invalid JSON body" {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestMPTCreateValidationError(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})

	recorder := post(t, server.Handler(), "/api/mpt/create", `{"domainId":"domain-1"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if message := decodeError(t, recorder); message != "accountId is required" {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestMPTCreateProposesAndRecordsHistory(t *testing.T) {
	fake := &fakeCustody{}
	server, log := testServer(t, fake)

	body := `{
		"domainId": "domain-1",
		"accountId": "account-1",
		"assetScale": 2,
		"flags": 32,
		"metadataFields": {"ticker": "TST", "name": "Test Token"}
	}`
	recorder := post(t, server.Handler(), "/api/mpt/create", body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Request  map[string]any  `json:"request"`
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Request["author"] == nil {
		t.Fatal("expected submitted envelope in response")
	}
	if string(response.Response) != `{"requestId":"req-1"}` {
		t.Fatalf("unexpected backend body: %s", response.Response)
	}

	if len(fake.proposed) != 1 {
		t.Fatalf("expected one proposal, got %d", len(fake.proposed))
	}
	payload, ok := fake.proposed[0].Payload.(*intent.CreateTransactionOrderPayload)
	if !ok {
		t.Fatalf("unexpected payload type: %T", fake.proposed[0].Payload)
	}
	if payload.LedgerID != "xrpl-testnet" {
		t.Fatalf("expected configured ledger fallback, got %s", payload.LedgerID)
	}
	operation, ok := payload.Parameters.Operation.(intent.MPTokenIssuanceCreateOperation)
	if !ok {
		t.Fatalf("unexpected operation type: %T", payload.Parameters.Operation)
	}
	if operation.Metadata == "" {
		t.Fatal("expected metadata fields to be encoded onto the issuance")
	}

	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Kind != history.KindMPTIssuanceCreate || records[0].RequestID != "req-1" {
		t.Fatalf("unexpected history: %v", records)
	}
}

func TestMPTCreateRejectsMixedMetadataModes(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})

	body := `{
		"domainId": "domain-1",
		"accountId": "account-1",
		"rawMetadata": "{\"t\":\"A\"}",
		"metadataFields": {"ticker": "TST"}
	}`
	recorder := post(t, server.Handler(), "/api/mpt/create", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if message := decodeError(t, recorder); !strings.Contains(message, "mutually exclusive") {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestAuthorizeReturnsRawBackendBody(t *testing.T) {
	fake := &fakeCustody{}
	server, log := testServer(t, fake)

	body := `{"domainId":"domain-1","accountId":"account-1","issuanceId":"issuance-1"}`
	recorder := post(t, server.Handler(), "/api/intents/propose", body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if recorder.Body.String() != `{"requestId":"req-1"}` {
		t.Fatalf("expected backend body verbatim, got %s", recorder.Body.String())
	}

	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Kind != history.KindMPTAuthorize {
		t.Fatalf("unexpected history: %v", records)
	}
}

func TestBackendFailureIsServerError(t *testing.T) {
	fake := &fakeCustody{
		proposeFunc: func(ctx context.Context, envelope *intent.Envelope) (*custody.ProposeIntentResult, error) {
			return nil, &custody.APIError{StatusCode: http.StatusBadGateway, Message: "upstream down"}
		},
	}
	server, _ := testServer(t, fake)

	body := `{"domainId":"domain-1","accountId":"account-1","issuanceId":"issuance-1"}`
	recorder := post(t, server.Handler(), "/api/intents/propose", body)
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	if message := decodeError(t, recorder); !strings.Contains(message, "upstream down") {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestReleaseTransfersRequiresTransferIDs(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})

	body := `{"domainId":"domain-1","accountId":"account-1","transferIds":[]}`
	recorder := post(t, server.Handler(), "/api/intents/release-transfers", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if message := decodeError(t, recorder); message != "transferIds must not be empty" {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestRequestStateLinksHistoryRecord(t *testing.T) {
	fake := &fakeCustody{
		stateFunc: func(ctx context.Context, requestID string, domainID string) (json.RawMessage, error) {
			return json.RawMessage(`{"state":"Executed","intentId":"intent-9"}`), nil
		},
	}
	server, log := testServer(t, fake)
	handler := server.Handler()

	body := `{"domainId":"domain-1","accountId":"account-1","issuanceId":"issuance-1"}`
	if recorder := post(t, handler, "/api/intents/propose", body); recorder.Code != http.StatusOK {
		t.Fatalf("proposal failed: %d %s", recorder.Code, recorder.Body.String())
	}
	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	historyID := records[0].ID

	stateBody := fmt.Sprintf(`{"requestId":"req-1","domainId":"domain-1","historyId":%q}`, historyID)
	recorder := post(t, handler, "/api/requests/state", stateBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	records, err = log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].IntentID != "intent-9" {
		t.Fatalf("expected history record linked to intent, got %+v", records[0])
	}
}

func TestMetadataPreview(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})

	recorder := post(t, server.Handler(), "/api/mpt/metadata", `{"metadataFields":{"ticker":"ABC"}}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Metadata map[string]any `json:"metadata"`
		Hex      string         `json:"hex"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Hex != "7B2274223A22414243227D" {
		t.Fatalf("unexpected hex: %s", response.Hex)
	}
	if response.Metadata["t"] != "ABC" {
		t.Fatalf("unexpected metadata object: %v", response.Metadata)
	}
}

func TestMetadataPreviewRejectsInvalidRaw(t *testing.T) {
	server, _ := testServer(t, &fakeCustody{})

	recorder := post(t, server.Handler(), "/api/mpt/metadata", `{"rawMetadata":"[1,2]"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if message := decodeError(t, recorder); message != "metadata must be a JSON object" {
		t.Fatalf("unexpected message: %s", message)
	}
}

func TestHistoryListAndClear(t *testing.T) {
	server, log := testServer(t, &fakeCustody{})
	handler := server.Handler()

	if _, err := log.Append(history.KindPayment, "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recorder := post(t, handler, "/api/history/list", ``)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var listing struct {
		Items []history.Record `json:"items"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(listing.Items) != 1 || listing.Items[0].RequestID != "req-1" {
		t.Fatalf("unexpected listing: %v", listing.Items)
	}

	if recorder := post(t, handler, "/api/history/clear", ``); recorder.Code != http.StatusOK {
		t.Fatalf("clear failed: %d", recorder.Code)
	}
	records, err := log.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %v", records)
	}
}
