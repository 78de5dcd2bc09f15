// Package fimclient provides the main entry point for creating FimFiction
// API clients. It wires configuration, transport, and authentication around
// the types defined in pkg/fimapi.
//
// Clients are constructed either through the OAuth2 client_credentials grant
// (New with ClientID/ClientSecret, or NewWithClientCredentials) or directly
// from a pre-obtained access token (NewWithToken). Once constructed, a client
// attaches its bearer token to every request and decodes API error envelopes
// into the typed taxonomy in pkg/fimapi.
package fimclient
