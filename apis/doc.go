/*
   Copyright 2025 The DIRPX Authors

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

// Package apis defines the small contracts dguard errors satisfy and that
// transport adapters consume.
//
// Adapters (grpcx, httpx, adapter) and callers that only need to inspect a
// failure target these interfaces instead of the concrete *dguard.Error, so
// custom error types produced through a Customization can take part in the
// same projections by implementing whichever subset applies.
//
// The package only holds interfaces and view types and must stay free of
// heavy dependencies.
package apis
