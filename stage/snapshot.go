// This file is part of Stagehand.
//
// Stagehand is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stagehand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stagehand.  If not, see <https://www.gnu.org/licenses/>.

package stage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jetsetilly/stagehand/resources"
)

// saveSnapshot encodes the image as a PNG file and saves it with the
// persistence provider. Returns the filename used.
func saveSnapshot(prov resources.Provider, sceneName string, img image.Image) (string, error) {
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	fn := fmt.Sprintf("%s.png", resources.UniqueFilename("snapshot", sceneName))
	if err := prov.Save(fn, b.Bytes()); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	return fn, nil
}
