//go:build stringer

//go:generate go run golang.org/x/tools/cmd/stringer -linecomment -type TorchDType -output zz_generated.torchdtype.stringer.go -trimprefix TorchDType
package pyprof

import _ "golang.org/x/tools/cmd/stringer"
