package morse

// Reference tables. Entry order matters: a repeated code keeps its last value.

var latinEntries = []Entry{
	{".-", "a"}, {"-...", "b"}, {"-.-.", "c"}, {"-..", "d"}, {".", "e"}, {"..-.", "f"},
	{"--.", "g"}, {"....", "h"}, {"..", "i"}, {".---", "j"}, {"-.-", "k"}, {".-..", "l"},
	{"--", "m"}, {"-.", "n"}, {"---", "o"}, {".--.", "p"}, {"--.-", "q"}, {".-.", "r"},
	{"...", "s"}, {"-", "t"}, {"..-", "u"}, {"...-", "v"}, {".--", "w"}, {"-..-", "x"},
	{"-.--", "y"}, {"--..", "z"},
}

var arabicEntries = []Entry{
	{".-", "ا"},
	{"-...", "ب"}, {"-", "ت"}, {"-.-.", "ث"},
	{".---", "ج"}, {"....", "ح"}, {"---", "خ"},
	{"-..", "د"}, {"--..", "ذ"},
	{".-.", "ر"}, {"---.", "ز"},
	{"...", "س"}, {"----", "ش"},
	{"-..-", "ص"}, {"...-", "ض"},
	{"..-", "ط"}, {"-.--", "ظ"},
	{".-.-", "ع"}, {"--.", "غ"},
	{"..-.", "ف"}, {"--.-", "ق"},
	{"-.-", "ك"}, {".-..", "ل"},
	{"--", "م"}, {"-.", "ن"},
	// overrides ح above
	{"....", "ه"}, {".--", "و"}, {"..", "ي"},
	{".", "ء"},
}

var sharedEntries = []Entry{
	{"-----", "0"}, {".----", "1"}, {"..---", "2"}, {"...--", "3"},
	{"....-", "4"}, {".....", "5"}, {"-....", "6"},
	{"--...", "7"}, {"---..", "8"}, {"----.", "9"},

	{".-.-.-", "."}, {"--..--", ","}, {"..--..", "?"}, {"-.-.--", "!"},
	{"-....-", "-"}, {"-..-.", "/"},
	{WordSpace, " "},
}

var (
	// Latin holds the Latin letters a-z.
	Latin = NewTable("latin", latinEntries...)
	// Arabic holds the Arabic letters.
	Arabic = NewTable("arabic", arabicEntries...)
	// Shared holds digits, punctuation and the word space, usable from
	// either alphabet.
	Shared = NewTable("shared", sharedEntries...)
)

// Tables returns the reference tables keyed by name.
func Tables() map[string]Table {
	return map[string]Table{
		Latin.Name():  Latin,
		Arabic.Name(): Arabic,
		Shared.Name(): Shared,
	}
}
