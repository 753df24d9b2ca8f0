package dashboard

import (
	"net/http"

	"github.com/xrpl-custody/custody-sdk-go/pkg/history"
	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
	"github.com/xrpl-custody/custody-sdk-go/pkg/xls89"
)

// metadataFields mirrors the structured XLS-89 form.
type metadataFields struct {
	Ticker         string             `json:"ticker"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	IconURL        string             `json:"iconUrl"`
	AccessControl  string             `json:"accessControl"`
	AssetClass     string             `json:"assetClass"`
	IssuerName     string             `json:"issuerName"`
	URLs           []xls89.URL        `json:"urls"`
	AdditionalInfo []metadataKeyValue `json:"additionalInfo"`
}

type metadataKeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (f metadataFields) toFields() xls89.Fields {
	additionalInfo := make([]xls89.KeyValue, 0, len(f.AdditionalInfo))
	for _, entry := range f.AdditionalInfo {
		additionalInfo = append(additionalInfo, xls89.KeyValue{Key: entry.Key, Value: entry.Value})
	}
	return xls89.Fields{
		Ticker:         f.Ticker,
		Name:           f.Name,
		Description:    f.Description,
		IconURL:        f.IconURL,
		AccessControl:  f.AccessControl,
		AssetClass:     f.AssetClass,
		IssuerName:     f.IssuerName,
		URLs:           f.URLs,
		AdditionalInfo: additionalInfo,
	}
}

// resolveMetadata turns whichever authoring mode the request used into
// the hex blob the issuance carries. Modes are mutually exclusive.
func resolveMetadata(metadataHex string, rawMetadata string, fields *metadataFields) (string, error) {
	modes := 0
	if metadataHex != "" {
		modes++
	}
	if rawMetadata != "" {
		modes++
	}
	if fields != nil {
		modes++
	}
	if modes > 1 {
		return "", &xls89.FormatError{Message: "metadata, rawMetadata, and metadataFields are mutually exclusive"}
	}

	switch {
	case metadataHex != "":
		if _, err := xls89.DecodeHex(metadataHex); err != nil {
			return "", err
		}
		return metadataHex, nil
	case rawMetadata != "":
		object, err := xls89.ParseRaw(rawMetadata)
		if err != nil {
			return "", err
		}
		return xls89.EncodeHex(object)
	case fields != nil:
		return xls89.Encode(fields.toFields())
	}
	return "", nil
}

func (s *Server) handleMPTAuthorize(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID   string `json:"domainId"`
		IssuanceID string `json:"issuanceId"`
		AccountID  string `json:"accountId"`
		LedgerID   string `json:"ledgerId"`
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

	envelope, err := s.builder.MPTAuthorize(currentUser.Author(), intent.MPTAuthorizeParams{
		DomainID:   body.DomainID,
		LedgerID:   s.ledgerID(body.LedgerID),
		AccountID:  body.AccountID,
		IssuanceID: body.IssuanceID,
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
	s.recordSubmission(history.KindMPTAuthorize, result.RequestID)
	writeRaw(w, http.StatusOK, result.Response)
}

func (s *Server) handlePayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID           string `json:"domainId"`
		AccountID          string `json:"accountId"`
		DestinationAddress string `json:"destinationAddress"`
		Amount             string `json:"amount"`
		IssuanceID         string `json:"issuanceId"`
		Description        string `json:"description"`
		LedgerID           string `json:"ledgerId"`
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

	envelope, err := s.builder.Payment(currentUser.Author(), intent.PaymentParams{
		DomainID:           body.DomainID,
		LedgerID:           s.ledgerID(body.LedgerID),
		AccountID:          body.AccountID,
		DestinationAddress: body.DestinationAddress,
		Amount:             body.Amount,
		IssuanceID:         body.IssuanceID,
		Description:        body.Description,
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
	s.recordSubmission(history.KindPayment, result.RequestID)
	writeJSON(w, http.StatusOK, proposalResponse{Request: envelope, Response: result.Response})
}

func (s *Server) handleMPTCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID       string          `json:"domainId"`
		AccountID      string          `json:"accountId"`
		LedgerID       string          `json:"ledgerId"`
		AssetScale     *int            `json:"assetScale"`
		TransferFee    int             `json:"transferFee"`
		MaximumAmount  string          `json:"maximumAmount"`
		Flags          uint32          `json:"flags"`
		Metadata       string          `json:"metadata"`
		RawMetadata    string          `json:"rawMetadata"`
		MetadataFields *metadataFields `json:"metadataFields"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}
	if body.DomainID == "" {
		s.badRequest(w, "domainId is required")
		return
	}

	metadata, err := resolveMetadata(body.Metadata, body.RawMetadata, body.MetadataFields)
	if err != nil {
		s.writeError(w, err)
		return
	}

	currentUser, err := s.custody.WhoAmI(r.Context(), body.DomainID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	envelope, err := s.builder.MPTIssuanceCreate(currentUser.Author(), intent.MPTIssuanceCreateParams{
		DomainID:      body.DomainID,
		LedgerID:      s.ledgerID(body.LedgerID),
		AccountID:     body.AccountID,
		AssetScale:    body.AssetScale,
		TransferFee:   body.TransferFee,
		MaximumAmount: body.MaximumAmount,
		Flags:         body.Flags,
		Metadata:      metadata,
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
	s.recordSubmission(history.KindMPTIssuanceCreate, result.RequestID)
	writeJSON(w, http.StatusOK, proposalResponse{Request: envelope, Response: result.Response})
}

func (s *Server) handleMPTSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID   string `json:"domainId"`
		AccountID  string `json:"accountId"`
		IssuanceID string `json:"issuanceId"`
		Holder     string `json:"holder"`
		Flags      uint32 `json:"flags"`
		LedgerID   string `json:"ledgerId"`
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

	envelope, err := s.builder.MPTIssuanceSet(currentUser.Author(), intent.MPTIssuanceSetParams{
		DomainID:   body.DomainID,
		LedgerID:   s.ledgerID(body.LedgerID),
		AccountID:  body.AccountID,
		IssuanceID: body.IssuanceID,
		Flags:      intent.SetFlag(body.Flags),
		Holder:     body.Holder,
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
	s.recordSubmission(history.KindMPTIssuanceSet, result.RequestID)
	writeJSON(w, http.StatusOK, proposalResponse{Request: envelope, Response: result.Response})
}

func (s *Server) handleMPTDestroy(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID   string `json:"domainId"`
		AccountID  string `json:"accountId"`
		IssuanceID string `json:"issuanceId"`
		LedgerID   string `json:"ledgerId"`
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

	envelope, err := s.builder.MPTIssuanceDestroy(currentUser.Author(), intent.MPTIssuanceDestroyParams{
		DomainID:   body.DomainID,
		LedgerID:   s.ledgerID(body.LedgerID),
		AccountID:  body.AccountID,
		IssuanceID: body.IssuanceID,
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
	s.recordSubmission(history.KindMPTIssuanceDestroy, result.RequestID)
	writeJSON(w, http.StatusOK, proposalResponse{Request: envelope, Response: result.Response})
}

func (s *Server) handleReleaseTransfers(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DomainID    string   `json:"domainId"`
		AccountID   string   `json:"accountId"`
		TransferIDs []string `json:"transferIds"`
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

	envelope, err := s.builder.ReleaseTransfers(currentUser.Author(), intent.ReleaseTransfersParams{
		DomainID:    body.DomainID,
		AccountID:   body.AccountID,
		TransferIDs: body.TransferIDs,
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

// handleMetadataPreview powers the form's live preview: it assembles and
// encodes metadata without submitting anything.
func (s *Server) handleMetadataPreview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RawMetadata    string          `json:"rawMetadata"`
		MetadataFields *metadataFields `json:"metadataFields"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.badRequest(w, "invalid JSON body")
		return
	}

	var object map[string]any
	var err error
	if body.RawMetadata != "" {
		if body.MetadataFields != nil {
			s.badRequest(w, "rawMetadata and metadataFields are mutually exclusive")
			return
		}
		object, err = xls89.ParseRaw(body.RawMetadata)
	} else if body.MetadataFields != nil {
		object = xls89.BuildObject(body.MetadataFields.toFields())
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	encoded, err := xls89.EncodeHex(object)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"metadata": object,
		"hex":      encoded,
	})
}

func (s *Server) recordSubmission(kind string, requestID string) {
	if requestID == "" {
		return
	}
	if _, err := s.history.Append(kind, requestID); err != nil {
		s.logger.Warn().Err(err).Str("kind", kind).Msg("failed to record submission")
	}
}
