package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/xrpl-custody/custody-sdk-go/pkg/custody"
)

func (s *Server) handleDomainsList(w http.ResponseWriter, r *http.Request) {
	result, err := s.custody.ListDomains(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleVaultsList(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID string `json:"domainId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	result, err := s.custody.ListVaults(r.Context(), body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleTickersList(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LedgerIDs []string `json:"ledgerIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if len(body.LedgerIDs) == 0 {
		s.badRequest(w, "ledgerIds array is required and must not be empty")
		return
	}

	result, err := s.custody.ListTickers(r.Context(), body.LedgerIDs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleTickersGet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TickerID string `json:"tickerId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.TickerID == "" {
		s.badRequest(w, "tickerId is required")
		return
	}

	result, err := s.custody.GetTicker(r.Context(), body.TickerID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleTransactionsList(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID string `json:"domainId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	result, err := s.custody.ListTransactions(r.Context(), body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleTransactionsGet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TransactionID string `json:"transactionId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.TransactionID == "" {
		s.badRequest(w, "transactionId is required")
		return
	}

	result, err := s.custody.GetTransaction(r.Context(), body.TransactionID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleTransfersList(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID    string `json:"domainId"`
		Kind        string `json:"kind"`
		Quarantined *bool  `json:"quarantined"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	result, err := s.custody.ListTransfers(r.Context(), custody.TransferQuery{
		DomainID:    body.DomainID,
		Kind:        body.Kind,
		Quarantined: body.Quarantined,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleIntentsGet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IntentID string `json:"intentId"`
		DomainID string `json:"domainId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.IntentID == "" {
		s.badRequest(w, "intentId is required")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	result, err := s.custody.GetIntent(r.Context(), body.IntentID, body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleRequestState(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RequestID string `json:"requestId"`
		DomainID  string `json:"domainId"`
		HistoryID string `json:"historyId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.RequestID == "" || body.DomainID == "" {
		s.badRequest(w, "requestId and domainId are required")
		return
	}

	result, err := s.custody.RequestState(r.Context(), body.RequestID, body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Once the backend assigns an intent id, remember it on the history
	// record so the submitted-intents view can link to the intent.
	if body.HistoryID != "" {
		var state struct {
			IntentID string `json:"intentId"`
		}
		if json.Unmarshal(result, &state) == nil && state.IntentID != "" {
			if err := s.history.SetIntentID(body.HistoryID, state.IntentID); err != nil {
				s.logger.Warn().Err(err).Str("historyId", body.HistoryID).Msg("failed to update history record")
			}
		}
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.Records()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cleared": true})
}
