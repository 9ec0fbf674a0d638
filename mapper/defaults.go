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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dguard/code"
)

// defaultHTTP maps every guard code to a transport status. All three
// failure kinds are caller mistakes and map to 400; internal is reserved for
// errors that did not come from a guard.
var defaultHTTP = map[code.Code]int{
	code.NullArgument:    http.StatusBadRequest,
	code.OutOfRange:      http.StatusBadRequest,
	code.InvalidArgument: http.StatusBadRequest,
	code.Internal:        http.StatusInternalServerError,
}

// defaultGRPC keeps the range kind distinguishable: gRPC has a dedicated
// OutOfRange code, HTTP does not.
var defaultGRPC = map[code.Code]codes.Code{
	code.NullArgument:    codes.InvalidArgument,
	code.OutOfRange:      codes.OutOfRange,
	code.InvalidArgument: codes.InvalidArgument,
	code.Internal:        codes.Internal,
}
