// Package fimapi provides types, errors, and helpers for working with the
// FimFiction v2 API.
//
// # Overview
//
// The fimapi package defines the OAuth scope registry, the typed error
// taxonomy for the API's numeric error codes, and the client Config. A
// concrete client is provided by the fimclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// fimclient to construct a client.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fimfic-io/fimapi/pkg/fimapi"
//	  "github.com/fimfic-io/fimapi/pkg/fimclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := fimclient.New(ctx, &fimapi.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  bearer, err := cli.BearerToken(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = bearer
//	}
//
// # Errors
//
// Errors from the API are decoded into APIError values holding an ErrorKind:
// an ErrorFamily matching the HTTP status (400/403/404/422/429) plus a
// per-family ErrorSubkind decoded from the numeric wire code. Helpers such as
// IsNotFound, IsForbidden, IsRateLimited, and IsInvalidToken make it easy to
// branch on common cases; callers decide retry and re-authentication policy.
// Responses whose error envelope cannot be interpreted surface as
// InvalidErrorCodeError, and 5xx responses as ServerError.
//
// # Scopes
//
// Scope enumerates the permissions an OAuth client can request; String and
// ParseScope convert between scopes and the snake_case wire names the API
// uses. See the ScopeReadStories doc comment for a known upstream naming
// collision that this package preserves rather than corrects.
package fimapi
