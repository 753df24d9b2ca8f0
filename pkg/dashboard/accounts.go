package dashboard

import (
	"net/http"

	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
)

func (s *Server) handleAccountsList(w http.ResponseWriter, r *http.Request) {
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

	result, err := s.custody.ListAccounts(r.Context(), body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleAccountBalances(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AccountID string `json:"accountId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.AccountID == "" {
		s.badRequest(w, "accountId is required")
		return
	}

	result, err := s.custody.AccountBalances(r.Context(), body.AccountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleAccountAddresses(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AccountID string `json:"accountId"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.AccountID == "" {
		s.badRequest(w, "accountId is required")
		return
	}

	result, err := s.custody.AccountAddresses(r.Context(), body.AccountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

func (s *Server) handleAccountsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID    string   `json:"domainId"`
		Alias       string   `json:"alias"`
		VaultID     string   `json:"vaultId"`
		KeyStrategy string   `json:"keyStrategy"`
		LedgerIDs   []string `json:"ledgerIds"`
		Lock        string   `json:"lock"`
		Description string   `json:"description"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	currentUser, err := s.custody.WhoAmI(r.Context(), body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	envelope, err := s.builder.CreateAccount(currentUser.Author(), intent.CreateAccountParams{
		DomainID:    body.DomainID,
		Alias:       body.Alias,
		VaultID:     body.VaultID,
		KeyStrategy: intent.KeyStrategy(body.KeyStrategy),
		Lock:        intent.LockState(body.Lock),
		Description: body.Description,
		LedgerIDs:   body.LedgerIDs,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.custody.ProposeIntent(r.Context(), envelope)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proposalResponse{Request: envelope, Response: result.Response})
}

func (s *Server) handleUsersCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID    string           `json:"domainId"`
		Alias       string           `json:"alias"`
		PublicKey   string           `json:"publicKey"`
		Roles       []string         `json:"roles"`
		Lock        string           `json:"lock"`
		Description string           `json:"description"`
		LoginIDs    []intent.LoginID `json:"loginIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	currentUser, err := s.custody.WhoAmI(r.Context(), body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	envelope, err := s.builder.CreateUser(currentUser.Author(), intent.CreateUserParams{
		DomainID:    body.DomainID,
		Alias:       body.Alias,
		PublicKey:   body.PublicKey,
		Roles:       body.Roles,
		Lock:        intent.LockState(body.Lock),
		Description: body.Description,
		LoginIDs:    body.LoginIDs,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.custody.ProposeIntent(r.Context(), envelope)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proposalResponse{Request: envelope, Response: result.Response})
}
