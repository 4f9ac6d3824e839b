package config

// Option is one selectable catalog entry. Key is the stable internal
// name, Label is the display string exactly as it appears on the BVV
// tournament page. Selection by index maps onto the slice position.
type Option struct {
	Key   string
	Label string
}

// PlayingStyles lists the playing styles offered on the BVV page, in
// selection order.
var PlayingStyles = []Option{
	{Key: "MEN", Label: "Männer"},
	{Key: "WOMEN", Label: "Frauen"},
	{Key: "MIXED", Label: "Mixed"},
}

// TournamentClasses lists the tournament classes offered on the BVV
// page, in selection order.
var TournamentClasses = []Option{
	{Key: "KAT_1_PLUS", Label: "BVV Beach Masters (Kat.1+)"},
	{Key: "KAT_1", Label: "BVV Beach Masters (Kat.1)"},
	{Key: "KAT_2", Label: "BVV Beach Masters (Kat.2)"},
	{Key: "KAT_3_CUP_PLUS", Label: "BVV Beach K3 (Cup+)"},
	{Key: "SONSTIGE_MIXED", Label: "sonstige Mixed"},
	{Key: "EXPERT_MIXED", Label: "Expert - Mixed"},
	{Key: "FREESTYLE", Label: "Freestyle"},
	{Key: "BASIC", Label: "basic"},
	{Key: "EXPERT", Label: "expert"},
}

// LabelsByIndex maps the given selection indices onto catalog labels.
// Out-of-range indices are ignored.
func LabelsByIndex(catalog []Option, indices []int) map[int]string {
	selected := make(map[int]string, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(catalog) {
			continue
		}
		selected[idx] = catalog[idx].Label
	}
	return selected
}
