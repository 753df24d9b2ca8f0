// Package custody is the client for the remote custody backend. It owns
// authentication (a signed client assertion exchanged for a bearer token),
// transport, and one typed entry point per backend operation the
// dashboard uses: proposing intents, listing accounts, domains, tickers,
// vaults, transactions and quarantined transfers, and polling request
// state.
//
// The backend owns signing, ledger submission, and persistence; this
// client only delivers envelopes and surfaces responses. Listing and
// lookup operations return the backend body verbatim as json.RawMessage
// because the dashboard forwards it unmodified.
//
//	client, err := custody.NewClient(custody.Config{
//		AuthURL:    "https://auth.example.com",
//		APIURL:     "https://api.example.com",
//		PrivateKey: privateKeyPEM,
//		PublicKey:  keyID,
//	})
//
//	result, err := client.ProposeIntent(ctx, envelope)
package custody
