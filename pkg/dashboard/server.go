package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/xrpl-custody/custody-sdk-go/pkg/custody"
	"github.com/xrpl-custody/custody-sdk-go/pkg/history"
	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
)

// CustodyAPI is the slice of the custody client the dashboard consumes.
type CustodyAPI interface {
	ProposeIntent(ctx context.Context, envelope *intent.Envelope) (*custody.ProposeIntentResult, error)
	GetIntent(ctx context.Context, intentID string, domainID string) (json.RawMessage, error)
	RequestState(ctx context.Context, requestID string, domainID string) (json.RawMessage, error)
	WhoAmI(ctx context.Context, domainID string) (*custody.CurrentUser, error)
	ListAccounts(ctx context.Context, domainID string) (json.RawMessage, error)
	AccountBalances(ctx context.Context, accountID string) (json.RawMessage, error)
	AccountAddresses(ctx context.Context, accountID string) (json.RawMessage, error)
	ListDomains(ctx context.Context) (json.RawMessage, error)
	ListTickers(ctx context.Context, ledgerIDs []string) (json.RawMessage, error)
	GetTicker(ctx context.Context, tickerID string) (json.RawMessage, error)
	ListTransactions(ctx context.Context, domainID string) (json.RawMessage, error)
	GetTransaction(ctx context.Context, transactionID string) (json.RawMessage, error)
	ListTransfers(ctx context.Context, filters custody.TransferQuery) (json.RawMessage, error)
	ListVaults(ctx context.Context, domainID string) (json.RawMessage, error)
}

// Config configures the dashboard server.
type Config struct {
	Custody CustodyAPI
	History *history.Log
	Builder intent.Builder
	Logger  zerolog.Logger

	// MPTLedgerID is the ledger applied to MPT transaction orders when a
	// request does not name one.
	MPTLedgerID string
}

// Server hosts the dashboard route handlers.
type Server struct {
	custody     CustodyAPI
	history     *history.Log
	builder     intent.Builder
	logger      zerolog.Logger
	mptLedgerID string
}

// NewServer creates a Server. A history log is created in memory when
// none is supplied.
func NewServer(config Config) (*Server, error) {
	if config.Custody == nil {
		return nil, fmt.Errorf("custody client is required")
	}
	log := config.History
	if log == nil {
		log = history.NewLog(history.NewMemoryStore())
	}
	return &Server{
		custody:     config.Custody,
		history:     log,
		builder:     config.Builder,
		logger:      config.Logger,
		mptLedgerID: config.MPTLedgerID,
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/accounts/list", s.handleAccountsList)
	mux.HandleFunc("POST /api/accounts/create", s.handleAccountsCreate)
	mux.HandleFunc("POST /api/accounts/balances", s.handleAccountBalances)
	mux.HandleFunc("POST /api/accounts/addresses", s.handleAccountAddresses)
	mux.HandleFunc("POST /api/users/create", s.handleUsersCreate)
	mux.HandleFunc("POST /api/domains/list", s.handleDomainsList)
	mux.HandleFunc("POST /api/vaults/list", s.handleVaultsList)
	mux.HandleFunc("POST /api/tickers/list", s.handleTickersList)
	mux.HandleFunc("POST /api/tickers/get", s.handleTickersGet)
	mux.HandleFunc("POST /api/transactions/list", s.handleTransactionsList)
	mux.HandleFunc("POST /api/transactions/get", s.handleTransactionsGet)
	mux.HandleFunc("POST /api/transactions/transfers", s.handleTransfersList)
	mux.HandleFunc("POST /api/intents/propose", s.handleMPTAuthorize)
	mux.HandleFunc("POST /api/intents/payment", s.handlePayment)
	mux.HandleFunc("POST /api/intents/get", s.handleIntentsGet)
	mux.HandleFunc("POST /api/intents/release-transfers", s.handleReleaseTransfers)
	mux.HandleFunc("POST /api/mpt/create", s.handleMPTCreate)
	mux.HandleFunc("POST /api/mpt/set", s.handleMPTSet)
	mux.HandleFunc("POST /api/mpt/destroy", s.handleMPTDestroy)
	mux.HandleFunc("POST /api/mpt/metadata", s.handleMetadataPreview)
	mux.HandleFunc("POST /api/requests/state", s.handleRequestState)
	mux.HandleFunc("POST /api/history/list", s.handleHistoryList)
	mux.HandleFunc("POST /api/history/clear", s.handleHistoryClear)

	return s.withLogging(mux)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(started)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ledgerID falls back to the configured MPT ledger when the request does
// not name one.
func (s *Server) ledgerID(requested string) string {
	if requested != "" {
		return requested
	}
	return s.mptLedgerID
}
