package assets

import _ "embed"

// ManualHTML is the manual's HTML/CSS template. Image slots are written as
// {img_<name>} and sit inside src="data:image/png;base64,..." attributes;
// {repo_qr} marks where the repository QR code goes.
//
//go:embed manual.html
var ManualHTML string

// RepositoryURL is the clone URL printed in the build-from-source section
// and encoded in its QR code.
const RepositoryURL = "https://github.com/vulh1209/local-transcript"

// ManualFilename is the generated document's file name.
const ManualFilename = "LocalTranscript_Manual.html"
