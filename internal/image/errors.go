package imagepkg

import "errors"

var (
	// ErrDecode reports an image that is not valid base64 or not a raster image.
	ErrDecode = errors.New("decode error")
	// ErrFontLoad reports a missing or malformed font asset.
	ErrFontLoad = errors.New("font load error")
	// ErrEncode reports a canvas that could not be encoded.
	ErrEncode = errors.New("encode error")
)
