package main

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/hhhapz/doc"
	"github.com/rs/zerolog/log"
)

var (
	searchErr = "Could not find package with the name of `%s`."
	notFound  = "Could not find `%s` in package `%s`."
)

func (b *botState) handleDocs(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	data := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, data); err != nil {
		log.Error().Err(err).Msg("could not send interaction callback")
		return
	}

	// only arg and required, always present
	query := d.Options[0].String()

	log.Info().Str("user", e.User.Tag()).Str("query", query).Msg("used docs")

	embed := b.docs(*e.User, query)
	if _, err := b.state.EditInteractionResponse(b.appID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}); err != nil {
		log.Error().Err(err).Msg("could not edit interaction response")
	}
}

func (b *botState) docs(user discord.User, query string) discord.Embed {
	module, parts := parseQuery(query)
	split := strings.Split(module, "/")
	if full, ok := b.cfg.Aliases[split[0]]; ok {
		split[0] = full
	}

	pkg, err := b.searcher.Search(context.Background(), strings.Join(split, "/"))
	if err != nil {
		log.Warn().Err(err).Str("user", user.Tag()).Str("query", query).Msg("package request failed")
		return failEmbed("Error", fmt.Sprintf(searchErr, module))
	}

	name, anchor, comment, missing := lookup(pkg, parts)
	if missing != "" {
		return failEmbed("Error: Not Found", fmt.Sprintf(notFound, missing, module))
	}

	url := "https://pkg.go.dev/" + pkg.URL + anchor
	return b.documentEmbed(name, url, docMarkdown(name, comment))
}

// lookup finds the documented item named by parts. missing is the first part
// that could not be found.
func lookup(pkg doc.Package, parts []string) (name, anchor string, comment doc.Comment, missing string) {
	switch len(parts) {
	case 0:
		return "Package " + pkg.URL, "", pkg.Overview, ""

	case 1:
		if typ, ok := pkg.Types[parts[0]]; ok {
			return pkg.URL + ": " + typ.Name, "#" + typ.Name, typ.Comment, ""
		}
		if fn, ok := pkg.Functions[parts[0]]; ok {
			return pkg.URL + ": " + fn.Name, "#" + fn.Name, fn.Comment, ""
		}
		return "", "", nil, parts[0]

	default:
		typ, ok := pkg.Types[parts[0]]
		if !ok {
			return "", "", nil, parts[0]
		}
		method, ok := typ.Methods[parts[1]]
		if !ok {
			return "", "", nil, parts[1]
		}
		return fmt.Sprintf("%s: %s.%s", pkg.URL, method.For, method.Name),
			fmt.Sprintf("#%s.%s", method.For, method.Name), method.Comment, ""
	}
}

func docMarkdown(title string, comment doc.Comment) string {
	if len(comment) == 0 {
		return "# " + title + "\n\n*No documentation found*\n"
	}
	return "# " + title + "\n\n" + comment.Markdown()
}

func parseQuery(module string) (string, []string) {
	var split []string
	var first string

	if strings.Contains(module, "@") {
		split = strings.Split(module, " ")
		first = split[0]
	} else {
		module = strings.ReplaceAll(module, " ", ".")
		dir, base := path.Split(strings.ToLower(module))
		split = strings.Split(base, ".")
		first = dir + split[0]
	}

	if strings.HasPrefix(first, "x/") {
		first = "golang.org/" + first
	}
	if complete, ok := stdlibPackages[first]; ok {
		first = complete
	}

	return first, split[1:]
}

// stdlibPackages maps the last element of nested standard library packages
// to their import path.
var stdlibPackages = map[string]string{
	"tar": "archive/tar",
	"zip": "archive/zip",

	"bzip2": "compress/bzip2",
	"flate": "compress/flate",
	"gzip":  "compress/gzip",
	"lzw":   "compress/lzw",
	"zlib":  "compress/zlib",

	"heap": "container/heap",
	"list": "container/list",
	"ring": "container/ring",

	"aes":      "crypto/aes",
	"cipher":   "crypto/cipher",
	"des":      "crypto/des",
	"dsa":      "crypto/dsa",
	"ecdsa":    "crypto/ecdsa",
	"ed25519":  "crypto/ed25519",
	"elliptic": "crypto/elliptic",
	"hmac":     "crypto/hmac",
	"md5":      "crypto/md5",
	"rc4":      "crypto/rc4",
	"rsa":      "crypto/rsa",
	"sha1":     "crypto/sha1",
	"sha256":   "crypto/sha256",
	"sha512":   "crypto/sha512",
	"subtle":   "crypto/subtle",
	"tls":      "crypto/tls",
	"x509":     "crypto/x509",
	"pkix":     "crypto/x509/pkix",

	"sql": "database/sql",

	"dwarf":    "debug/dwarf",
	"elf":      "debug/elf",
	"gosym":    "debug/gosym",
	"macho":    "debug/macho",
	"pe":       "debug/pe",
	"plan9obj": "debug/plan9obj",

	"ascii85": "encoding/ascii85",
	"asn1":    "encoding/asn1",
	"base32":  "encoding/base32",
	"base64":  "encoding/base64",
	"binary":  "encoding/binary",
	"csv":     "encoding/csv",
	"gob":     "encoding/gob",
	"hex":     "encoding/hex",
	"json":    "encoding/json",
	"pem":     "encoding/pem",
	"xml":     "encoding/xml",

	"ast":           "go/ast",
	"build":         "go/build",
	"constraint":    "go/build/constraint",
	"constant":      "go/constant",
	"docformat":     "go/docformat",
	"importer":      "go/importer",
	"parserprinter": "go/parserprinter",
	"scanner":       "go/scanner",
	"token":         "go/token",
	"types":         "go/types",

	"adler32": "hash/adler32",
	"crc32":   "hash/crc32",
	"crc64":   "hash/crc64",
	"fnv":     "hash/fnv",
	"maphash": "hash/maphash",

	"color":   "image/color",
	"draw":    "image/draw",
	"gif":     "image/gif",
	"jpeg":    "image/jpeg",
	"parsing": "image/parsing",

	"suffixarray": "index/suffixarray",

	"fs":     "io/fs",
	"ioutil": "io/ioutil",

	"big":   "math/big",
	"bits":  "math/bits",
	"cmplx": "math/cmplx",

	"multipart":       "mime/multipart",
	"quotedprintable": "mime/quotedprintable",

	"http":      "net/http",
	"cgi":       "net/http/cgi",
	"cookiejar": "net/http/cookiejar",
	"fcgi":      "net/http/fcgi",
	"httptest":  "net/http/httptest",
	"httptrace": "net/http/httptrace",
	"httputil":  "net/http/httputil",
	"mail":      "net/mail",
	"rpc":       "net/rpc",
	"jsonrpc":   "net/rpc/jsonrpc",
	"smtp":      "net/smtp",
	"textproto": "net/textproto",

	"exec":   "os/exec",
	"signal": "os/signal",
	"user":   "os/user",

	"filepath": "path/filepath",

	"syntax": "regexp/syntax",

	"cgo":     "runtime/cgo",
	"metrics": "runtime/metrics",
	"msan":    "runtime/msan",
	"race":    "runtime/race",
	"trace":   "runtime/trace",

	"js": "syscall/js",

	"fstest": "testing/fstest",
	"iotest": "testing/iotest",
	"quick":  "testing/quick",

	"tabwriter": "text/tabwriter",

	"parse": "text/template/parse",

	"tzdata": "time/tzdata",

	"utf16": "unicode/utf16",
	"utf8":  "unicode/utf8",
}
