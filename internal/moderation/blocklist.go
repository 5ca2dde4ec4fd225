package moderation

// blocklist holds lower-case terms matched as plain substrings of the
// normalized topic. Substring matching also catches terms embedded in longer
// words ("sex" in "sussex"); that over-blocking is accepted behavior.
//
// The crisis phrases "want to die" and "end it all" and the phrase
// "how to die" are not listed here: the harmful and crisis pattern rules
// cover them and report a more specific reason.
var blocklist = []string{
	// violence and self-harm
	"suicide", "self-harm", "kill myself", "terrorism", "bomb", "weapon", "gun", "knife", "murder",
	"assault", "violence", "violent", "torture", "abuse", "domestic violence", "school shooting",
	"mass shooting", "genocide", "war crimes", "execution", "assassination",

	// sexual content
	"sexual", "porn", "pornography", "nsfw", "explicit", "nude", "naked", "sex", "intercourse",
	"masturbation", "orgasm", "penis", "vagina", "breast", "genital", "erotic", "fetish",
	"prostitution", "escort", "brothel", "strip club", "adult content",

	// hate speech
	"hate", "slur", "racist", "racism", "nazi", "fascist", "bigot", "homophobic", "transphobic",
	"islamophobic", "antisemitic", "xenophobic", "supremacist", "kkk", "white power",

	// drugs and illegal activity
	"drug", "cocaine", "heroin", "meth", "cannabis", "marijuana", "weed", "lsd", "ecstasy",
	"drug dealing", "drug trafficking", "illegal drugs", "substance abuse", "overdose",
	"money laundering", "fraud", "scam", "hacking", "identity theft",

	// graphic content
	"gore", "graphic", "dismember", "decapitation", "mutilation", "corpse", "dead body",
	"blood", "injury", "wound", "cutting", "self-cutting", "self-injury",

	// child safety
	"child", "minor", "underage", "pedophile", "child abuse", "child exploitation",
	"grooming", "predator",

	// crisis
	"no point living", "kill me", "suicide methods", "painless death", "suicide note",

	// other severe harm
	"incest", "bestiality", "necrophilia", "rape", "sexual assault", "molest",
	"human trafficking", "slavery", "child labor",
}
