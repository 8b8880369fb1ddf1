// Package dev2cloud provides a Go client SDK for Dev2Cloud,
// a service for provisioning ephemeral database sandboxes.
//
// The SDK creates, inspects, and deletes sandboxes (Postgres or Redis
// instances) and hides asynchronous provisioning behind a synchronous
// Create call with a bounded wait.
//
// Basic usage:
//
//	client, err := dev2cloud.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a sandbox and wait until it's running
//	sandbox, err := client.Create(ctx, dev2cloud.WithType(dev2cloud.TypePostgres))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Connect with:", sandbox.URL)
//
//	// Clean up
//	client.Delete(ctx, sandbox.ID)
package dev2cloud
