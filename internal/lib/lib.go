// Package lib groups supporting libraries that are not business logic:
// the notification channels and the background job queue.
package lib
