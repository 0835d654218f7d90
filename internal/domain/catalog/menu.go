package catalog

// Menu is the ramen shop menu quizzed by the trainer, in register order.
var Menu = []Entry{
	{Full: "味噌ラーメン", Abbr: "ミ"},
	{Full: "味噌コーンラーメン", Abbr: "ミコ"},
	{Full: "味噌納豆ラーメン", Abbr: "ミ納豆"},
	{Full: "味噌メンマラーメン", Abbr: "ミメンマ"},
	{Full: "味噌バターラーメン", Abbr: "ミバ"},
	{Full: "味噌ワカメラーメン", Abbr: "ミワカメ"},
	{Full: "味噌チャーシューメン(3g)", Abbr: "サミチャ"},
	{Full: "味噌チャーシューメン(5g)", Abbr: "ミチャ"},
	{Full: "スタミナラーメン", Abbr: "スタ"},
	{Full: "味噌バターコーンラーメン", Abbr: "ミバコ"},
	{Full: "デラックスラーメン", Abbr: "DX"},
	{Full: "大辛味噌ラーメン", Abbr: "大辛ミ"},
	{Full: "ビリカラ挽き味噌ラーメン", Abbr: "Pミ"},
	{Full: "ねぎ味噌ラーメン", Abbr: "ネミ"},
	{Full: "ねぎスタミナラーメン", Abbr: "ネスタ"},
	{Full: "ねぎ味噌チャーシュー麵", Abbr: "ネミチャ"},
	{Full: "ねぎデラックスラーメン", Abbr: "ネギDX"},
	{Full: "キムチ味噌ラーメン", Abbr: "キムミ"},
	{Full: "味噌担々麵", Abbr: "三担"},
	{Full: "しょうゆラーメン", Abbr: "正"},
	{Full: "しょうゆメンマラーメン", Abbr: "正メンマ"},
	{Full: "しょうゆワカメラーメン", Abbr: "正ワカメ"},
	{Full: "しょうゆバターコーンラーメン", Abbr: "正ハコ"},
	{Full: "チャーシュー麵", Abbr: "チャー"},
	{Full: "大辛しょうゆラーメン", Abbr: "大辛正"},
	{Full: "ねぎ醤油", Abbr: "ネ正"},
	{Full: "中華ラーメン", Abbr: "中"},
	{Full: "中華コーン", Abbr: "中コ"},
	{Full: "中華バターラーメン", Abbr: "中バ"},
	{Full: "ねぎ中華ラーメン", Abbr: "ネ中"},
	{Full: "中華チャーシューメン", Abbr: "中チャ"},
	{Full: "ねぎ中華チャーシューメン", Abbr: "ネ中シャ"},
	{Full: "塩ラーメン", Abbr: "塩"},
	{Full: "塩バターラーメン", Abbr: "塩バ"},
	{Full: "塩バターコーンラーメン", Abbr: "塩バコ"},
	{Full: "塩チャーシューメン", Abbr: "塩チャ"},
	{Full: "塩バターチャーシューメン", Abbr: "塩バチャ"},
	{Full: "ねぎ塩ラーメン", Abbr: "ネ塩"},
	{Full: "岩塩ラーメン", Abbr: "G"},
	{Full: "岩塩ラーメンスペシャル", Abbr: "GS"},
	{Full: "カレーラーメン", Abbr: "カレー"},
	{Full: "カレーコーン", Abbr: "カレコーン"},
	{Full: "カレーバターラーメン", Abbr: "カレバタ"},
	{Full: "カレーチャーシューメン", Abbr: "カレチャ"},
	{Full: "大辛カレーラーメン", Abbr: "大辛カレー"},
	{Full: "お子様ラーメン", Abbr: "お子"},
	{Full: "とんこつラーメン", Abbr: "とん"},
	{Full: "やさいラーメン", Abbr: "やさい"},
	{Full: "台湾ラーメン", Abbr: "台"},
	{Full: "野菜定食", Abbr: "野定"},
	{Full: "ぎょうざ(5個)(15時前)", Abbr: "セ"},
	{Full: "ぎょうざ(5個)(15時後)", Abbr: "ギ"},
	{Full: "メンマ盛り合わせ", Abbr: "㋔メンマ"},
	{Full: "野菜炒め", Abbr: "㋔やさい"},
	{Full: "チャーシュー盛り合わせ", Abbr: "㋔チャーシュー"},
	{Full: "半ライス(130g)", Abbr: "半ライス"},
	{Full: "ライス(200g)", Abbr: "ライス"},
	{Full: "ぎょうざ(5個)おみやげ", Abbr: "To ギ"},
	{Full: "ネギチャーシュー丼", Abbr: "ネギ丼"},
	{Full: "みそ味豚そば３丼", Abbr: "そば３丼"},
	{Full: "温玉メンマ丼", Abbr: "メンマ丼"},
}
