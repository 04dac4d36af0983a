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

// Package api provides functional test utilities for the PetFriends API.
//
// # Live and Offline Runs
//
// By default the suites talk to the service at API_BASE_URL using the
// account in PETFRIENDS_EMAIL and PETFRIENDS_PASSWORD. Setting
// USE_FAKE_SERVER=true starts the in-process server from
// pkg/petfriends/fake instead, with strict field validation, so the
// suites can run in CI without credentials.
//
// # Unexpected Success
//
// The live service is known to accept some invalid pet data. Negative
// scenarios use ExpectRejected, which fails with a message naming the
// accepted input rather than passing silently, and removes any pet the
// service created by mistake.
//
// # Shared State
//
// Scenarios share one remote account and are not safe to run in parallel.
// Pets created by a scenario are deleted by DeferCleanup whether the
// scenario passes or fails.
package api
