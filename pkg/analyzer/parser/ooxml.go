// Package parser provides workbook reading utilities for the analyzer.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

const workbookPart = "xl/workbook.xml"

// sheetPart links a sheet name to its package part.
type sheetPart struct {
	name string
	path string
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

// relsPath returns the relationships part of a package part,
// e.g. xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPath(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// resolveTarget resolves a relationship target against the part owning it.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(path.Dir(source), target))
}

// relationship is a single entry of a .rels part.
type relationship struct {
	id     string
	target string
	kind   string
}

func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rel.id = attr.Value
				case "Target":
					rel.target = attr.Value
				case "Type":
					rel.kind = attr.Value
				}
			}
			result = append(result, rel)
		}
	}

	return result
}

// relationshipKind reports the last path segment of a relationship type,
// e.g. ".../relationships/drawing" -> "drawing".
func relationshipKind(relType string) string {
	return path.Base(relType)
}

// parseWorkbookSheets returns sheet names with their relationship ids,
// in workbook order.
func parseWorkbookSheets(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result = append(result, relationship{id: rID, target: name})
			}
		}
	}

	return result
}

// sheetParts lists worksheets and chartsheets with their part paths.
func sheetParts(r *zip.Reader) ([]sheetPart, error) {
	workbookXML, err := readZipFile(r, workbookPart)
	if err != nil || workbookXML == nil {
		return nil, err
	}
	wbRelsXML, err := readZipFile(r, relsPath(workbookPart))
	if err != nil || wbRelsXML == nil {
		return nil, err
	}

	targets := make(map[string]string)
	for _, rel := range parseRelationships(wbRelsXML) {
		switch relationshipKind(rel.kind) {
		case "worksheet", "chartsheet":
			targets[rel.id] = resolveTarget(workbookPart, rel.target)
		}
	}

	var result []sheetPart
	for _, sheet := range parseWorkbookSheets(workbookXML) {
		if p, ok := targets[sheet.id]; ok {
			result = append(result, sheetPart{name: sheet.target, path: p})
		}
	}
	return result, nil
}

// findDrawingPart returns the drawing part referenced by a sheet part,
// or "" when the sheet has no drawing. Legacy VML drawings are ignored.
func findDrawingPart(r *zip.Reader, sheetPath string) (string, error) {
	data, err := readZipFile(r, relsPath(sheetPath))
	if err != nil || data == nil {
		return "", err
	}
	for _, rel := range parseRelationships(data) {
		if relationshipKind(rel.kind) == "drawing" {
			return resolveTarget(sheetPath, rel.target), nil
		}
	}
	return "", nil
}
