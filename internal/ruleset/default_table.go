package ruleset

import "github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"

// DefaultTable returns the built-in rule table. It is the baseline that
// offline feedback tuning adjusts; deployments may override it from config.
func DefaultTable() *Table {
	return &Table{
		Weights: Weights{
			Definitive:      6.0,
			StrongKeyword:   4.0,
			Brand:           1.0,
			NegativePenalty: -4.0,
			RepeatFactor:    0.25,
		},
		Thresholds: Thresholds{
			MinScore:       2.0,
			TieMargin:      0.75,
			ConfidenceKnee: 1.5,
			HighConfidence: 75,
			AutoMerge:      0.85,
			Review:         0.60,
		},
		Brands: []Brand{
			{Name: "T-Motor", Aliases: []string{"t-motor", "tmotor", "t motor"}, Bias: []model.Category{model.CategoryMotor, model.CategoryProp}},
			{Name: "iFlight", Aliases: []string{"iflight"}, Bias: []model.Category{model.CategoryFrame, model.CategoryMotor}},
			{Name: "Gemfan", Aliases: []string{"gemfan"}, Bias: []model.Category{model.CategoryProp}},
			{Name: "HQProp", Aliases: []string{"hqprop", "hq prop"}, Bias: []model.Category{model.CategoryProp}},
			{Name: "Dalprop", Aliases: []string{"dalprop"}, Bias: []model.Category{model.CategoryProp}},
			{Name: "Tattu", Aliases: []string{"tattu"}, Bias: []model.Category{model.CategoryBattery}},
			{Name: "CNHL", Aliases: []string{"cnhl", "china hobby line"}, Bias: []model.Category{model.CategoryBattery}},
			{Name: "GNB", Aliases: []string{"gnb", "gaoneng"}, Bias: []model.Category{model.CategoryBattery}},
			{Name: "SpeedyBee", Aliases: []string{"speedybee", "speedy bee"}, Bias: []model.Category{model.CategoryStack, model.CategoryFrame}},
			{Name: "Mamba", Aliases: []string{"mamba"}, Bias: []model.Category{model.CategoryStack}},
			{Name: "Hobbywing", Aliases: []string{"hobbywing"}, Bias: []model.Category{model.CategoryStack}},
			{Name: "Foxeer", Aliases: []string{"foxeer"}, Bias: []model.Category{model.CategoryCamera}},
			{Name: "Caddx", Aliases: []string{"caddx"}, Bias: []model.Category{model.CategoryCamera}},
			{Name: "RunCam", Aliases: []string{"runcam", "run cam"}, Bias: []model.Category{model.CategoryCamera}},
			{Name: "Emax", Aliases: []string{"emax"}, Bias: []model.Category{model.CategoryMotor}},
			{Name: "BrotherHobby", Aliases: []string{"brotherhobby", "brother hobby"}, Bias: []model.Category{model.CategoryMotor}},
			{Name: "GEPRC", Aliases: []string{"geprc", "gep"}, Bias: []model.Category{model.CategoryFrame}},
			{Name: "ImpulseRC", Aliases: []string{"impulserc", "impulse rc"}, Bias: []model.Category{model.CategoryFrame}},
		},
		Keywords: []Keyword{
			// Strong multi-word terms first; they shadow their constituents.
			{Term: "frame kit", Category: model.CategoryFrame, Weight: 5.0},
			{Term: "flight controller", Category: model.CategoryStack, Weight: 5.0},
			{Term: "fpv camera", Category: model.CategoryCamera, Weight: 5.0},
			{Term: "fc stack", Category: model.CategoryStack, Weight: 5.0},
			{Term: "esc stack", Category: model.CategoryStack, Weight: 5.0},
			{Term: "lipo battery", Category: model.CategoryBattery, Weight: 5.0},

			{Term: "frame", Category: model.CategoryFrame, Weight: 2.5},
			{Term: "wheelbase", Category: model.CategoryFrame, Weight: 2.5},
			{Term: "motor", Category: model.CategoryMotor, Weight: 2.5},
			{Term: "stack", Category: model.CategoryStack, Weight: 2.5},
			{Term: "esc", Category: model.CategoryStack, Weight: 2.5},
			{Term: "aio", Category: model.CategoryStack, Weight: 2.0},
			{Term: "camera", Category: model.CategoryCamera, Weight: 2.5},
			{Term: "vtx", Category: model.CategoryCamera, Weight: 2.0},
			{Term: "propeller", Category: model.CategoryProp, Weight: 2.5},
			{Term: "prop", Category: model.CategoryProp, Weight: 2.5},
			{Term: "tri-blade", Category: model.CategoryProp, Weight: 2.0},
			{Term: "lipo", Category: model.CategoryBattery, Weight: 2.5},
			{Term: "li-ion", Category: model.CategoryBattery, Weight: 2.5},
			{Term: "battery", Category: model.CategoryBattery, Weight: 2.5},
		},
		AccessoryTerms: []string{
			"mount",
			"tray",
			"protection kit",
			"accessory",
			"spare part",
			"replacement",
			"holder",
			"strap",
			"guard",
			"landing gear",
		},
	}
}
