// Package encode writes merge output, a list of fragments in element
// form (see package merge), as an XML document.
//
// Elements are indented by four spaces, elements holding only text are
// written on one line and empty elements are self closing. Text and
// attribute values are escaped; conflict marker fragments are written
// as raw lines and then tidied by [FixMarkers].
//
// # Usage
//
//	err := encode.Encode(res.Output, w, encode.EncodeMarkers(cfg))
package encode
