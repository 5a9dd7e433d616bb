package filtering

// Per-language token tables for candidate validation. Functional words
// (articles, pronouns, common auxiliary conjugations, conjunctions, number
// words) never count as vocabulary; neither do interjections. All entries
// are lowercase, lookups are case-insensitive.

var stopwords = map[string]map[string]struct{}{
	"de": wordSet(
		// articles and contractions
		"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer", "eines",
		"am", "im", "ins", "zum", "zur", "beim", "vom",
		// pronouns
		"ich", "du", "er", "sie", "es", "wir", "ihr", "mich", "dich", "sich", "uns", "euch",
		"mir", "dir", "ihm", "ihn", "ihnen", "mein", "dein", "sein", "ihre", "unser", "euer",
		"man", "wer", "was", "dies", "diese", "dieser", "dieses", "jene", "jener",
		// auxiliaries and modals
		"bin", "bist", "ist", "sind", "seid", "war", "waren", "wäre", "sei",
		"habe", "hast", "hat", "haben", "habt", "hatte", "hatten",
		"werde", "wirst", "wird", "werden", "werdet", "wurde", "wurden",
		"kann", "kannst", "können", "könnt", "konnte", "muss", "musst", "müssen",
		"will", "willst", "wollen", "wollte", "soll", "sollst", "sollen", "sollte",
		"darf", "dürfen", "durfte", "mag", "mögen", "möchte",
		// conjunctions and particles
		"und", "oder", "aber", "denn", "doch", "wenn", "als", "wie", "dass", "weil",
		"auch", "noch", "nur", "schon", "sehr", "nicht", "kein", "keine", "ja", "nein",
		"zu", "von", "mit", "bei", "nach", "aus", "auf", "für", "über", "unter", "vor", "hier", "dort",
		// number words
		"null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun",
		"zehn", "elf", "zwölf", "zwanzig", "dreißig", "hundert", "tausend",
	),
	"en": wordSet(
		// articles
		"the", "a", "an",
		// pronouns
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their", "mine", "yours", "this", "that",
		"these", "those", "who", "whom", "whose", "which", "what",
		// auxiliaries and modals
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"will", "would", "shall", "should", "can", "could", "may", "might", "must",
		// conjunctions and particles
		"and", "or", "but", "nor", "so", "yet", "if", "then", "than", "as", "because",
		"not", "no", "yes", "also", "very", "just", "only", "too",
		"to", "of", "in", "on", "at", "by", "for", "with", "from", "about", "into", "over", "under",
		"here", "there",
		// number words
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "twenty", "thirty", "hundred", "thousand",
	),
	"es": wordSet(
		// articles and contractions
		"el", "la", "los", "las", "un", "una", "unos", "unas", "al", "del",
		// pronouns
		"yo", "tú", "él", "ella", "ello", "nosotros", "vosotros", "ellos", "ellas", "usted", "ustedes",
		"me", "te", "se", "nos", "os", "le", "les", "lo", "mi", "tu", "su", "mis", "tus", "sus",
		"este", "esta", "esto", "estos", "estas", "ese", "esa", "eso", "que", "quien", "cual",
		// auxiliaries
		"soy", "eres", "es", "somos", "sois", "son", "era", "eran", "fue", "fueron", "sea", "ser",
		"estoy", "estás", "está", "estamos", "están", "estaba", "estaban", "estar",
		"he", "has", "ha", "hemos", "han", "había", "haber", "hay",
		"puedo", "puedes", "puede", "podemos", "pueden", "podía", "poder",
		"quiero", "quieres", "quiere", "queremos", "quieren", "querer",
		"debo", "debes", "debe", "debemos", "deben", "deber",
		// conjunctions and particles
		"y", "o", "pero", "sino", "si", "como", "porque", "cuando", "donde", "también",
		"no", "sí", "muy", "solo", "ya", "aún", "más", "menos",
		"a", "de", "en", "con", "por", "para", "sin", "sobre", "entre", "hasta", "desde",
		"aquí", "allí", "ahí",
		// number words
		"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
		"diez", "once", "doce", "veinte", "treinta", "cien", "mil",
	),
}

var interjections = map[string]map[string]struct{}{
	"de": wordSet("ach", "aha", "äh", "ähm", "hm", "hmm", "oh", "oje", "na", "naja", "tja", "pfui", "igitt", "hurra", "autsch", "huch"),
	"en": wordSet("ah", "aha", "eh", "er", "uh", "um", "uhm", "hm", "hmm", "oh", "ooh", "wow", "ouch", "oops", "yay", "hey", "huh", "psst"),
	"es": wordSet("ah", "eh", "uf", "uy", "ay", "oh", "olé", "vaya", "anda", "hala", "ojalá", "caramba", "huy"),
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
