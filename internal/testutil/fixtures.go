// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides fixtures for tests.
package testutil

// Kanjidic is a small KANJIDIC table covering the characters used in tests.
// It starts with a header and contains a few lines that are not character
// records.
var Kanjidic = []string{
	"# KANJIDIC JIS X 0208 Kanji Information File - test fixture",
	"一 306C U4e00 B1 G1 S1 F2 イチ イツ ひと- ひと.つ T1 かず かつ {one} {one radical (no.1)}",
	"二 4673 U4e8c B7 G1 S2 F9 ニ ジ ふた ふた.つ ふたたび T1 つぐ {two} {two radical (no. 7)}",
	"私 3B64 U79c1 B115 G6 S7 F242 シ わたくし わたし T1 さい {private} {I} {me}",
	"牛 356D U725b B93 G2 S4 F347 ギュウ うし {cow} {bull} {oxen} {cattle}",
	"肉 4679 U8089 B130 G2 S6 F970 ニク シシ {meat} {flesh}",
	"等 4379 U7b49 B118 G3 S12 F333 トウ ひと.しい など -ら {etc.} {and so forth} {class (first)} {quality} {equal} {similar}",
	"日 467C U65e5 B72 G1 S4 F1 ニチ ジツ ひ -び -か T1 あ あき {day} {sun} {Japan} {counter for days}",
	"帰 3522 U5e30 B58 G2 S10 F317 キ かえ.る かえ.す おく.る とつ.ぐ {homecoming} {arrive at} {lead to} {result in}",
	"判 483D U5224 B18 G5 S7 F599 ハン バン わか.る T1 さだ なか {judgement} {signature} {stamp} {seal}",
	"官 3431 U5b98 B40 G4 S8 F470 カン T1 おおやけ たか {bureaucrat} {the government} {organ}",
	"贔 6C3B U8d14 B154 S21 ヒ {patronize} {favor}",
	"屓 5530 U5c53 B44 S10 キ {strength}",
	"形 3741 U5f62 B59 G2 S7 F472 ケイ ギョウ かた -がた かたち なり T1 ち {shape} {form} {style}",
	"",
	"猫 474E U732b B94 S11 ビョウ ねこ",
	"茶 4F3B U8336 B140 G2 S9 F251 チャ サ {tea}",
}

// Edict is a small EDICT2 dictionary. It starts with a header and contains
// one malformed line.
var Edict = []string{
	"　？？？ /EDICT, EDRDG test fixture/",
	"猫 [ねこ] /(n) cat/(P)/EntL1467640X/",
	"牛肉 [ぎゅうにく] /(n) beef/(P)/EntL1250920X/",
	"日帰り;日がえり [ひがえり] /(n,vs) day trip/(P)/EntL1461150X/",
	"食べる(P);喰べる(iK) [たべる(P)] /(v1,vt) (1) to eat/(2) to live on (e.g. a salary)/(P)/EntL1358280X/",
	"this line is malformed",
	"書く [かく] /(v5k,vt) (1) to write/to compose/(2) to draw/(P)/EntL1275830X/",
	"高い [たかい] /(adj-i) (1) high/tall/(2) expensive/(P)/EntL1279480X/",
	"来る(P);來る(oK) [くる(P)] /(vk,vi) (1) to come/(2) to approach/(P)/EntL1547720X/",
	"ねこ /(n) (uk) (col) pussy/EntL2767290X/",
	"家 [いえ;うち;け] /(n) (1) house/(2) family/(P)/EntL1191730X/",
	"内 [うち] /(n) (1) inside/(2) (uk) among/EntL1582710X/",
}

// Enamdict is a small ENAMDICT proper noun dictionary. It uses the EDICT
// format.
var Enamdict = []string{
	"　？？？ /ENAMDICT, EDRDG test fixture/",
	"山田 [やまだ] /(s) Yamada/",
	"東京 [とうきょう] /(p) Tokyo/",
}
