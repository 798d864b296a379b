package actiongen

import "github.com/wippyai/actiongen/rewrite"

// Directive is the marker comment that selects functions for rewriting.
const Directive = rewrite.Directive

// RewriteFile rewrites every marked function declaration in one source
// file and returns the resulting file text. Files without markers come
// back unchanged. The name is used only for diagnostics.
func RewriteFile(name string, src []byte) ([]byte, error) {
	res, err := rewrite.Rewrite(name, src)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}
