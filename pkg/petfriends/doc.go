/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package petfriends provides a thin HTTP client for the PetFriends pet
// management API.
//
// # Responses, Not Errors
//
// Every operation returns a Response carrying the HTTP status code, the
// decoded JSON body on success and the raw response text. A non-2xx status
// is not an error: the functional suites built on this client assert on
// rejections (403 for bad credentials, 400 for invalid pet data) as often as
// they assert on success, so the status is handed back as data. The error
// return is reserved for transport, encoding and decoding failures. Callers
// that do want an error on an unexpected status use Response.Expect.
//
// # Request Correlation
//
// Each request carries a freshly generated W3C traceparent header. The trace
// ID is kept on the Response and included in StatusError so a failing request
// can be located in server side logs.
package petfriends
