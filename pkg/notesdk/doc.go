// Package notesdk is a Go client for the notes service HTTP API.
//
// Basic usage:
//
//	client := notesdk.NewSDKClient("http://localhost:8080")
//
//	login, err := client.Login(ctx, "Ala", "secret")
//	if err != nil {
//		return err
//	}
//	client = client.WithToken(login.AccessToken)
//
//	notes, err := client.ListNotes(ctx)
//
// Every non-2xx response is returned as *APIError carrying the HTTP status
// and the server's message.
package notesdk
