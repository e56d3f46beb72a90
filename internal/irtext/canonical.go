package irtext

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/mathvm/mvmir/internal/ir"
)

// DomainProgram is the domain prefix for content-addressed program
// identity. The version suffix enables future format migration.
const DomainProgram = "mvmir/program/v1"

// MarshalCanonical renders the canonical byte form of a program: the
// document with every string rewritten to Unicode NFC, encoded as
// compact JSON with HTML escaping disabled. Field order is fixed by the
// document structs (no maps anywhere), so structurally equal programs
// produce identical bytes.
func MarshalCanonical(p *ir.Program) ([]byte, error) {
	doc := Encode(p)
	normalizeDoc(doc)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("canonical encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ProgramID computes the content-addressed identity of a program:
// SHA256(domain + 0x00 + canonical). The null separator prevents
// domain/data boundary ambiguity.
func ProgramID(p *ir.Program) (string, error) {
	canonical, err := MarshalCanonical(p)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(DomainProgram))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// normalizeDoc rewrites every user-supplied string in place to NFC so
// visually identical pool entries and block names hash alike. The doc
// was freshly encoded, so mutating it does not touch the source graph.
func normalizeDoc(doc *Document) {
	for i := range doc.Functions {
		fd := &doc.Functions[i]
		for j, s := range fd.Pool {
			fd.Pool[j] = norm.NFC.String(s)
		}
		for j := range fd.Blocks {
			bd := &fd.Blocks[j]
			bd.Name = norm.NFC.String(bd.Name)
			if bd.Jump == nil {
				continue
			}
			if bd.Jump.Always != nil {
				n := norm.NFC.String(*bd.Jump.Always)
				bd.Jump.Always = &n
			}
			if bd.Jump.Cond != nil {
				bd.Jump.Cond.Yes = norm.NFC.String(bd.Jump.Cond.Yes)
				bd.Jump.Cond.No = norm.NFC.String(bd.Jump.Cond.No)
			}
		}
	}
}
