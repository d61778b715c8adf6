// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var ErrOnlyMonoSupported = errors.New("only mono sources supported")
