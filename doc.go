// The XRPL Custody SDK for Go builds Intent Envelopes for custody
// platform "Propose Intent" requests and talks to the custody backend
// REST API. It targets the XRPL Multi-Purpose Token (MPT) operation set
// plus the account, user, and quarantine-release flows around it.
//
// # Packages
//
//   - pkg/intent: envelope builders for account, user, transaction
//     order, and release-transfers proposals
//   - pkg/xls89: XLS-89 MPT metadata assembly and hex codec
//   - pkg/custody: authenticated REST client for the custody backend
//   - pkg/history: append-only submitted-intents log
//   - pkg/dashboard: HTTP handlers serving the demo dashboard
//
// # XRPL references
//
// MPTokenIssuanceCreate and friends: https://xrpl.org/docs/references/protocol/transactions/types/mptokenissuancecreate
//
// XLS-89 metadata: https://github.com/XRPLF/XRPL-Standards/tree/master/XLS-0089-multi-purpose-token-metadata-schema
//
// # Installation
//
//	go get github.com/xrpl-custody/custody-sdk-go@latest
package custody_sdk_go
