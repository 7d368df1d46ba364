package promptgen

// variationMap maps a canonical term to interchangeable phrasings. A term
// without an entry is used as-is.
var variationMap = map[string][]string{
	"sitting":              {"sitting", "seated", "sitting down"},
	"standing":             {"standing", "standing up", "upright"},
	"lying":                {"lying", "lying down", "laid back"},
	"kneeling":             {"kneeling", "kneeling down", "on knees"},
	"squatting":            {"squatting", "crouching", "in a squat"},
	"from behind":          {"from behind", "rear view", "back view"},
	"from above":           {"from above", "overhead", "aerial view"},
	"realistic photograph": {"realistic photograph", "photorealistic", "realistic photo", "photograph"},
	"large breasts":        {"large breasts", "big breasts", "huge breasts"},
	"smile":                {"smile", "smiling", "smiling face"},
	"naked":                {"naked", "nude", "undressed", "unclothed"},
	"topless":              {"topless", "top less"},
	"outdoor":              {"outdoor", "outside", "outdoors"},
	"indoor":               {"indoor", "inside", "indoors", "interior"},
	"beach":                {"beach", "seaside", "shore", "tropical beach"},
	"sunset":               {"sunset", "sundown", "golden hour", "dusk"},
	"bikini":               {"bikini", "swimsuit", "swimwear"},
	"athletic":             {"athletic", "fit", "toned", "sporty"},
	"curvy":                {"curvy", "curvaceous", "hourglass figure"},
	"blonde":               {"blonde", "blond", "golden hair", "fair hair"},
	"brunette":             {"brunette", "brown hair", "chestnut hair"},
	"red hair":             {"red hair", "auburn hair", "ginger hair", "redhead"},
	"long hair":            {"long hair", "very long hair", "flowing hair"},
	"short hair":           {"short hair", "bob cut", "pixie cut"},
	"close-up":             {"close-up", "closeup", "tight shot"},
	"full body":            {"full body", "full shot", "whole body"},
	"portrait":             {"portrait", "portrait shot", "head and shoulders"},
	"studio":               {"studio", "photo studio", "indoor studio"},
	"forest":               {"forest", "woods", "woodland"},
	"dramatic lighting":    {"dramatic lighting", "dynamic lighting", "chiaroscuro"},
	"soft lighting":        {"soft lighting", "gentle lighting", "diffused light"},
	"natural lighting":     {"natural lighting", "daylight", "natural light"},
}

// defaultQualityTags are mixed into generated prompts when the caller does
// not supply a custom set.
var defaultQualityTags = []string{
	"masterpiece", "best quality", "highres", "absurdres", "ultra realistic",
	"sharp focus", "fine details", "highly detailed", "8k", "4k",
}

// defaultNegative is the base of every generated negative prompt.
const defaultNegative = "worst quality, low quality, bad anatomy, bad hands, " +
	"deformed, ugly, disfigured, poorly drawn face, mutation, extra fingers, " +
	"fewer fingers"

// commonNegatives are appended to the base in random pairs.
var commonNegatives = []string{
	"blurry", "blurred", "pixelated", "low resolution",
	"compression artifacts", "wrong anatomy", "mutated", "extra limbs",
	"missing limbs", "fused fingers", "too many fingers", "duplicate",
	"morbid", "mutilated", "poorly drawn",
}
