package tis620

// TIS-620 assigns Thai script to byte values 0xA1-0xFB. The assignment is
// sparse: 0x80-0xA0, 0xDB-0xDE and 0xFC-0xFF carry no meaning, and ASCII
// occupies 0x00-0x7F outside the table.
//
// References:
// https://en.wikipedia.org/wiki/Thai_Industrial_Standard_620-2533
// https://en.wikipedia.org/wiki/Thai_(Unicode_block)
var thaiTable = [...]struct {
	b byte
	r rune
}{
	{0xA1, 'ก'}, // ko kai
	{0xA2, 'ข'}, // kho khai
	{0xA3, 'ฃ'}, // kho khuat
	{0xA4, 'ค'}, // kho khwai
	{0xA5, 'ฅ'}, // kho khon
	{0xA6, 'ฆ'}, // kho rakhang
	{0xA7, 'ง'}, // ngo ngu
	{0xA8, 'จ'}, // cho chan
	{0xA9, 'ฉ'}, // cho ching
	{0xAA, 'ช'}, // cho chang
	{0xAB, 'ซ'}, // so so
	{0xAC, 'ฌ'}, // cho choe
	{0xAD, 'ญ'}, // yo ying
	{0xAE, 'ฎ'}, // do chada
	{0xAF, 'ฏ'}, // to patak
	{0xB0, 'ฐ'}, // tho than
	{0xB1, 'ฑ'}, // tho nangmontho
	{0xB2, 'ฒ'}, // tho phuthao
	{0xB3, 'ณ'}, // no nen
	{0xB4, 'ด'}, // do dek
	{0xB5, 'ต'}, // to tao
	{0xB6, 'ถ'}, // tho thung
	{0xB7, 'ท'}, // tho thahan
	{0xB8, 'ธ'}, // tho thong
	{0xB9, 'น'}, // no nu
	{0xBA, 'บ'}, // bo baimai
	{0xBB, 'ป'}, // po pla
	{0xBC, 'ผ'}, // pho phung
	{0xBD, 'ฝ'}, // fo fa
	{0xBE, 'พ'}, // pho phan
	{0xBF, 'ฟ'}, // fo fan
	{0xC0, 'ภ'}, // pho samphao
	{0xC1, 'ม'}, // mo ma
	{0xC2, 'ย'}, // yo yak
	{0xC3, 'ร'}, // ro rua
	{0xC4, 'ฤ'}, // ru
	{0xC5, 'ล'}, // lo ling
	{0xC6, 'ฦ'}, // lu
	{0xC7, 'ว'}, // wo waen
	{0xC8, 'ศ'}, // so sala
	{0xC9, 'ษ'}, // so rusi
	{0xCA, 'ส'}, // so sua
	{0xCB, 'ห'}, // ho hip
	{0xCC, 'ฬ'}, // lo chula
	{0xCD, 'อ'}, // o ang
	{0xCE, 'ฮ'}, // ho nokhuk
	{0xCF, 'ฯ'}, // paiyannoi
	{0xD0, 'ะ'}, // sara a
	{0xD1, 'ั'}, // mai han-akat
	{0xD2, 'า'}, // sara aa
	{0xD3, 'ำ'}, // sara am
	{0xD4, 'ิ'}, // sara i
	{0xD5, 'ี'}, // sara ii
	{0xD6, 'ึ'}, // sara ue
	{0xD7, 'ื'}, // sara uee
	{0xD8, 'ุ'}, // sara u
	{0xD9, 'ู'}, // sara uu
	{0xDA, 'ฺ'}, // phinthu
	{0xDF, '฿'}, // baht
	{0xE0, 'เ'}, // sara e
	{0xE1, 'แ'}, // sara ae
	{0xE2, 'โ'}, // sara o
	{0xE3, 'ใ'}, // sara ai maimuan
	{0xE4, 'ไ'}, // sara ai maimalai
	{0xE5, 'ๅ'}, // lakkhangyao
	{0xE6, 'ๆ'}, // maiyamok
	{0xE7, '็'}, // maitaikhu
	{0xE8, '่'}, // mai ek
	{0xE9, '้'}, // mai tho
	{0xEA, '๊'}, // mai tri
	{0xEB, '๋'}, // mai chattawa
	{0xEC, '์'}, // thanthakhat
	{0xED, 'ํ'}, // nikhahit
	{0xEE, '๎'}, // yamakkan
	{0xEF, '๏'}, // fongman
	{0xF0, '๐'}, // zero
	{0xF1, '๑'}, // one
	{0xF2, '๒'}, // two
	{0xF3, '๓'}, // three
	{0xF4, '๔'}, // four
	{0xF5, '๕'}, // five
	{0xF6, '๖'}, // six
	{0xF7, '๗'}, // seven
	{0xF8, '๘'}, // eight
	{0xF9, '๙'}, // nine
	{0xFA, '๚'}, // angkhankhu
	{0xFB, '๛'}, // khomut
}

var (
	// byteToRune holds the full forward mapping; unassigned slots stay zero,
	// which never collides with a mapped rune (nothing maps to U+0000).
	byteToRune [256]rune
	runeToByte map[rune]byte
)

func init() {
	runeToByte = make(map[rune]byte, len(thaiTable))
	for _, e := range thaiTable {
		byteToRune[e.b] = e.r
		runeToByte[e.r] = e.b
	}
}

// RuneForByte returns the Unicode character assigned to a table byte
// (0xA1-0xFB, with gaps). ASCII bytes are not in the table; absence is a
// valid outcome, not an error. The lookup never allocates.
func RuneForByte(b byte) (rune, bool) {
	r := byteToRune[b]
	return r, r != 0
}

// ByteForRune is the inverse of RuneForByte.
func ByteForRune(r rune) (byte, bool) {
	b, ok := runeToByte[r]
	return b, ok
}
