package regions

import (
    "strings"
    "unicode"

    "golang.org/x/text/width"
)

// LegacyProvincePrefix is prepended to townname by older records.
const LegacyProvincePrefix = "臺灣省"

var provincePrefixes = []string{LegacyProvincePrefix, "福建省"}

// Counties merged into or upgraded to special municipalities (2010, 2014).
// Their townships became 區.
var legacyCities = map[string]string{
    "臺北縣": "新北市",
    "桃園縣": "桃園市",
    "臺中縣": "臺中市",
    "臺南縣": "臺南市",
    "高雄縣": "高雄市",
}

var townRenames = map[string]map[string]string{
    "彰化縣": {"員林鎮": "員林市"},
    "苗栗縣": {"頭份鎮": "頭份市"},
}

// Normalizer canonicalises free-form region input into the city+township
// form used for prefix matching. It never fails; unknown input passes through
// with only the character-level folding applied.
type Normalizer struct {
    lookup *Lookup
}

func NewNormalizer(l *Lookup) *Normalizer { return &Normalizer{lookup: l} }

func (n *Normalizer) Normalize(raw string) string {
    s := strings.Map(func(r rune) rune {
        if unicode.IsSpace(r) {
            return -1
        }
        return r
    }, width.Fold.String(raw))
    if s == "" {
        return ""
    }
    s = strings.ReplaceAll(s, "台", "臺")
    for _, p := range provincePrefixes {
        s = strings.TrimPrefix(s, p)
    }

    city, town := Split(s)
    if current, ok := legacyCities[city]; ok {
        city = current
        town = n.upgradeTown(city, town)
    }
    for old, renamed := range townRenames[city] {
        if strings.HasPrefix(town, old) {
            town = renamed + strings.TrimPrefix(town, old)
            break
        }
    }
    return city + town
}

// upgradeTown rewrites the first 鄉/鎮/市 suffix to 區 when that yields a
// known township of city.
func (n *Normalizer) upgradeTown(city, town string) string {
    r := []rune(town)
    for i, c := range r {
        if c != '鄉' && c != '鎮' && c != '市' {
            continue
        }
        candidate := string(r[:i]) + "區"
        if n.lookup.HasTown(city, candidate) {
            return candidate + string(r[i+1:])
        }
    }
    return town
}
