package duck

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"okizeme/entity"
)

// Clean-up rules for the community sheet: advantage cells mix numbers with
// states ("KND", "STN (2nd)"), damage lists per-hit values, and commands
// use per-game button letters that get normalized to the universal A-D set
// (K->C, G->D for SoulCalibur).

var (
	signedIntRe = regexp.MustCompile(`[-+]?\d+`)
	tokenRe     = regexp.MustCompile(`:[^:]+:|\S`)
	damageRe    = regexp.MustCompile(`[0-9.]+`)
)

// normalizeRow builds one immutable move from a raw sheet row.
func normalizeRow(row map[string]string, id int) entity.Move {

	command := universalCommand(strings.TrimSpace(row["Command"]))

	return entity.Move{
		ID:            id,
		Character:     normalizeCharacter(row["Character"]),
		Command:       tokenize(command),
		Stance:        splitTokens(row["Stance"]),
		HitLevel:      splitTokens(row["Hit Level"]),
		Impact:        firstSigned(row["Impact"]),
		Damage:        strings.TrimSpace(row["Damage"]),
		DamageDec:     sumDamage(row["Damage"]),
		Block:         strings.TrimSpace(row["Block"]),
		BlockDec:      firstSigned(row["Block"]),
		Hit:           strings.TrimSpace(row["Hit"]),
		HitDec:        firstSigned(row["Hit"]),
		CounterHit:    strings.TrimSpace(row["Counter Hit"]),
		CounterHitDec: firstSigned(row["Counter Hit"]),
		GuardBurst:    firstSigned(row["Guard Burst"]),
		Properties:    splitTokens(row["Properties"]),
		Notes:         strings.TrimSpace(row["Notes"]),
	}
}

// normalizeCharacter capitalizes the first letter only.
func normalizeCharacter(name string) string {

	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// universalCommand maps SoulCalibur button letters to the universal set.
func universalCommand(cmd string) string {

	r := strings.NewReplacer("K", "C", "k", "c", "G", "D", "g", "d")
	return r.Replace(cmd)
}

// tokenize splits a command into ordered tokens: ":A+B:" icon groups stay
// whole, everything else splits per character cluster.
func tokenize(cmd string) []string {
	if cmd == "" {
		return nil
	}
	return tokenRe.FindAllString(cmd, -1)
}

// splitTokens splits a whitespace/comma separated cell.
func splitTokens(s string) []string {

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// firstSigned reads the first signed integer out of a cell ("-8~-6 KND"
// reads -8), nil when the cell holds no number at all.
func firstSigned(s string) *float64 {

	match := signedIntRe.FindString(s)
	if match == "" {
		return nil
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &n
}

// sumDamage totals a per-hit damage list ("10, 20(5)" sums to 35), nil for
// an empty cell. Parens and dashes are noise from the sheet.
func sumDamage(s string) *float64 {

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var total float64
	for _, part := range strings.Split(s, ",") {
		part = strings.NewReplacer("(", "", ")", "", "-", "").Replace(part)
		for _, num := range damageRe.FindAllString(part, -1) {
			n, err := strconv.ParseFloat(num, 64)
			if err != nil {
				continue
			}
			total += n
		}
	}
	return &total
}

func sortedKeys(byChar map[string][]entity.Move) []string {

	keys := make([]string, 0, len(byChar))
	for k := range byChar {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
