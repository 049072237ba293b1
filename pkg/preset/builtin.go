package preset

// Builtin returns the stock plans, freshly allocated.
//
//   - c (conservative): particles are left untranslated.
//   - d (onomatopoeia): particles become interjection-like characters.
//   - f (friendly): common words get multi-character readings.
func Builtin() []Plan {
	return []Plan{
		{
			Name:    "c",
			Outfile: OutfileFor("c"),
			Edits: map[string]string{
				"e":  "e",
				"la": "la",
				"li": "li",
				"o":  "o",
				"pi": "pi",
			},
		},
		{
			Name:    "d",
			Outfile: OutfileFor("d"),
			Edits: map[string]string{
				"e":  "唉",
				"la": "啦",
				"li": "哩",
				"o":  "哦",
				"pi": "噼",
			},
		},
		{
			Name:    "f",
			Outfile: OutfileFor("f"),
			Edits: map[string]string{
				"ala":     "无不非否",
				"e":       "把将",
				"ijo":     "什物",
				"ike":     "坏歹",
				"kalama":  "声音",
				"kama":    "来至到",
				"kasi":    "草木",
				"ken":     "可能",
				"kili":    "果蔬",
				"kin":     "亦也",
				"kiwen":   "石硬",
				"laso":    "蓝兰",
				"lawa":    "首头",
				"li":      "者兮",
				"loje":    "红丹",
				"luka":    "手五",
				"lukin":   "看见",
				"mi":      "吾我",
				"o":       "乎请",
				"pali":    "工作做造",
				"pan":     "米面",
				"pana":    "出予",
				"pona":    "良好",
				"sewi":    "上天",
				"sike":    "年轮",
				"sina":    "你尔",
				"sitelen": "图书",
				"taso":    "但惟",
				"toki":    "语言话",
				"tawa":    "向往",
				"utala":   "战斗",
				"weka":    "离去",
			},
		},
	}
}
