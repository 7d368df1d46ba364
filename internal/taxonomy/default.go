package taxonomy

// Default returns the built-in taxonomy set. Category and keyword order is
// fixed so analyzer output is stable across runs.
func Default() Set {
	return Set{
		Prompt: Taxonomy{Categories: []Category{
			{Name: "subject", Keywords: []string{
				"1girl", "1boy", "2girls", "2boys", "1femboy", "femboy",
				"female", "woman", "man", "girl", "boy", "solo",
			}},
			{Name: "pose", Keywords: []string{
				"sitting", "seated", "standing", "lying", "pinup pose",
				"kneeling", "squatting", "legs apart", "legs spread",
				"on back", "on stomach", "bent over", "from behind",
				"from above", "from front", "profile", "side view",
				"front view",
			}},
			{Name: "environment", Keywords: []string{
				"beach", "tropical", "outdoor", "indoor", "studio", "room",
				"forest", "desert", "mountain", "city", "night", "day",
				"sunset", "sunrise", "dawn", "dusk", "sky", "clouds",
				"grass", "palm", "resort", "ocean", "sea", "lake", "pool",
				"bed", "chair", "couch", "wall", "floor", "background",
			}},
			{Name: "body_features", Keywords: []string{
				"large breasts", "big breasts", "huge breasts",
				"small breasts", "flat chest", "athletic", "curvy",
				"curvaceous", "wide hips", "tiny waist", "petite", "slim",
				"fitness", "muscular", "toned", "plump", "chubby",
				"hourglass",
			}},
			{Name: "hair", Keywords: []string{
				"long hair", "short hair", "medium hair", "blonde",
				"brunette", "red hair", "black hair", "blue hair",
				"pink hair", "green hair", "white hair", "grey hair",
				"curly hair", "wavy hair", "straight hair", "bald",
				"ponytail", "braids", "pixie cut",
			}},
			{Name: "clothing", Keywords: []string{
				"bikini", "swimsuit", "naked", "nude", "topless", "clothed",
				"jeans", "shirt", "dress", "skirt", "blouse", "pants",
				"shorts", "underwear", "bra", "thong", "lingerie",
				"bodysuit", "costume", "uniform", "suit", "hat", "glasses",
				"jewelry", "necklace", "earrings", "bracelet", "tiara",
				"crown", "wings", "halo",
			}},
			{Name: "lighting", Keywords: []string{
				"sunset", "sunrise", "dramatic lighting", "studio lighting",
				"soft lighting", "natural lighting", "neon", "backlit",
				"rim light", "godrays", "shadow", "high contrast",
				"low key", "high key", "golden hour", "blue hour", "night",
				"dark", "bright", "dim", "spotlight",
			}},
			{Name: "art_style", Keywords: []string{
				"realistic photograph", "photorealistic", "realistic photo",
				"photograph", "photo of", "anime", "manga", "illustration",
				"digital painting", "oil painting", "watercolor",
				"3d render", "cartoon", "comic", "sketch",
			}},
			{Name: "quality", Keywords: []string{
				"8k", "4k", "high resolution", "highres", "absurdres",
				"masterpiece", "best quality", "amazing quality",
				"ultra realistic", "sharp focus", "fine details",
				"ultra detailed", "detailed", "hdr", "realism", "realistic",
				"sharp", "crisp",
			}},
			{Name: "camera", Keywords: []string{
				"75mm", "85mm", "50mm", "35mm", "wide angle", "telephoto",
				"macro", "depth of field", "bokeh", "sharp focus",
				"soft focus", "blurry", "close-up", "wide shot",
				"full body", "portrait", "cowboy shot", "headshot",
				"medium shot", "long shot",
			}},
			{Name: "composition", Keywords: []string{
				"close-up", "closeup", "medium shot", "wide shot",
				"full body", "headshot", "cowboy shot", "portrait", "bust",
				"waist up", "thigh up", "full shot", "solo focus",
			}},
			{Name: "emotion", Keywords: []string{
				"smiling", "smile", "laughing", "crying", "sad", "angry",
				"happy", "sexy", "seductive", "confident", "shy", "nervous",
				"relaxed", "calm", "pleased", "blushing", "blush",
				"embarrassed", "surprised", "worried", "confused",
			}},
			{Name: "skin_features", Keywords: []string{
				"sweaty", "wet", "shiny", "oily", "pale", "tan", "bronzed",
				"glowing", "radiant", "matte", "flawless", "perfect skin",
				"skin texture",
			}},
			{Name: "physical_details", Keywords: []string{
				"abs", "muscles", "muscular", "veins", "tattoos", "tattoo",
				"piercings", "piercing", "scars", "freckles", "moles",
				"dimples", "sweat", "veiny",
			}},
			{Name: "special_effects", Keywords: []string{
				"godrays", "particles", "sparkles", "glitter", "smoke",
				"fog", "mist", "fire", "flames", "rain", "snow", "wind",
				"leaves", "petals", "magic", "glow", "shimmer",
			}},
		}},
		Negative: Taxonomy{Categories: []Category{
			{Name: "quality", Keywords: []string{
				"worst quality", "low quality", "poor quality",
				"bad quality", "lowres", "blurry", "blurred", "blur",
				"pixelated", "upscaled", "compression artifacts",
				"jpeg artifacts",
			}},
			{Name: "anatomy", Keywords: []string{
				"bad anatomy", "wrong anatomy", "disfigured", "deformed",
				"mutated", "ugly", "missing limbs", "missing fingers",
				"extra limbs", "extra fingers", "fused fingers",
				"too many fingers", "bad hands", "bad feet", "bad face",
			}},
			{Name: "style", Keywords: []string{
				"3d", "cartoon", "anime", "manga", "comic", "sketch",
				"drawing", "painting", "watermark", "signature", "text",
				"logo",
			}},
			{Name: "unwanted_features", Keywords: []string{
				"fat", "chubby", "overweight", "skinny", "malnourished",
				"skeletal",
			}},
			{Name: "censoring", Keywords: []string{
				"censored", "censor", "bar censor", "mosaic", "covered",
				"hidden",
			}},
		}},
	}
}
