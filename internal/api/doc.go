// package api implements the HTTP transport for the VideoTube API.
//
// Every request is sent with credential-forwarding enabled (a cookie jar
// holds the httpOnly session cookie; the client never reads the token) and
// a generated X-Request-Id. Responses use the { data, message, success }
// envelope, which the client unwraps for callers.
//
// Failures are normalized into a single [Error] shape regardless of origin
// (network error, non-2xx status, client-side validation) and published as
// typed [FailureEvent]s to subscribers. The transport itself performs no
// session mutation or navigation; a single subscriber (the session
// coordinator) owns the authorization-failure policy. Errors are always
// returned to the call site as well, so local handling still runs.
package api
