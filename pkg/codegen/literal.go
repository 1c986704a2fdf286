package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// csharpString quotes arbitrary user text as a C# string literal.
func csharpString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// csharpFloat formats a float literal with the required "f" suffix.
func csharpFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "f"
}

func csharpVec3(v blueprint.Vec3) string {
	return fmt.Sprintf("new Vector3(%s, %s, %s)", csharpFloat(v.X), csharpFloat(v.Y), csharpFloat(v.Z))
}

func csharpColor(c blueprint.Color) string {
	return fmt.Sprintf("new Color(%s, %s, %s)", csharpFloat(c.R), csharpFloat(c.G), csharpFloat(c.B))
}

// csharpTime formats a framework 24h clock value (815 -> "0815").
func csharpTime(t int) string {
	return fmt.Sprintf("%04d", t)
}
