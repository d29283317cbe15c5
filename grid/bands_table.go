package grid

// bandSeeds is the compact latitude-band table: one (k, stepStart, indexStart)
// triple per band, sorted north to south. The remaining band fields are
// derived in buildBands at package init. The table is produced offline by
// balancing WGS-84 cell areas against the 1730.963 m2 target row by row and
// merging adjacent rows that share the same k; it never changes at runtime.
var bandSeeds = [bandCount]bandSeed{
	{k: 2880000, stepStart: 1, indexStart: 0},
	{k: 288000, stepStart: 2, indexStart: 1},
	{k: 180000, stepStart: 3, indexStart: 11},
	{k: 120000, stepStart: 4, indexStart: 27},
	{k: 96000, stepStart: 5, indexStart: 51},
	{k: 80000, stepStart: 6, indexStart: 81},
	{k: 72000, stepStart: 7, indexStart: 117},
	{k: 60000, stepStart: 8, indexStart: 157},
	{k: 57600, stepStart: 9, indexStart: 205},
	{k: 48000, stepStart: 10, indexStart: 255},
	{k: 45000, stepStart: 11, indexStart: 315},
	{k: 40000, stepStart: 12, indexStart: 379},
	{k: 36000, stepStart: 13, indexStart: 451},
	{k: 32000, stepStart: 14, indexStart: 531},
	{k: 28800, stepStart: 16, indexStart: 711},
	{k: 24000, stepStart: 18, indexStart: 911},
	{k: 23040, stepStart: 20, indexStart: 1151},
	{k: 22500, stepStart: 21, indexStart: 1276},
	{k: 20000, stepStart: 22, indexStart: 1404},
	{k: 19200, stepStart: 24, indexStart: 1692},
	{k: 18000, stepStart: 25, indexStart: 1842},
	{k: 16000, stepStart: 28, indexStart: 2322},
	{k: 15000, stepStart: 30, indexStart: 2682},
	{k: 14400, stepStart: 32, indexStart: 3066},
	{k: 12800, stepStart: 34, indexStart: 3466},
	{k: 12000, stepStart: 37, indexStart: 4141},
	{k: 11520, stepStart: 39, indexStart: 4621},
	{k: 11250, stepStart: 41, indexStart: 5121},
	{k: 10000, stepStart: 44, indexStart: 5889},
	{k: 9600, stepStart: 47, indexStart: 6753},
	{k: 9000, stepStart: 50, indexStart: 7653},
	{k: 8000, stepStart: 54, indexStart: 8933},
	{k: 7680, stepStart: 59, indexStart: 10733},
	{k: 7500, stepStart: 61, indexStart: 11483},
	{k: 7200, stepStart: 63, indexStart: 12251},
	{k: 6400, stepStart: 68, indexStart: 14251},
	{k: 6000, stepStart: 74, indexStart: 16951},
	{k: 5760, stepStart: 78, indexStart: 18871},
	{k: 5625, stepStart: 80, indexStart: 19871},
	{k: 5000, stepStart: 86, indexStart: 22943},
	{k: 4800, stepStart: 93, indexStart: 26975},
	{k: 4608, stepStart: 97, indexStart: 29375},
	{k: 4500, stepStart: 100, indexStart: 31250},
	{k: 4000, stepStart: 107, indexStart: 35730},
	{k: 3840, stepStart: 116, indexStart: 42210},
	{k: 3750, stepStart: 120, indexStart: 45210},
	{k: 3600, stepStart: 124, indexStart: 48282},
	{k: 3200, stepStart: 134, indexStart: 56282},
	{k: 3000, stepStart: 147, indexStart: 67982},
	{k: 2880, stepStart: 155, indexStart: 75662},
	{k: 2560, stepStart: 167, indexStart: 87662},
	{k: 2500, stepStart: 180, indexStart: 102287},
	{k: 2400, stepStart: 186, indexStart: 109199},
	{k: 2304, stepStart: 193, indexStart: 117599},
	{k: 2250, stepStart: 200, indexStart: 126349},
	{k: 2000, stepStart: 214, indexStart: 144269},
	{k: 1920, stepStart: 232, indexStart: 170189},
	{k: 1875, stepStart: 239, indexStart: 180689},
	{k: 1800, stepStart: 247, indexStart: 192977},
	{k: 1600, stepStart: 267, indexStart: 224977},
	{k: 1536, stepStart: 289, indexStart: 264577},
	{k: 1500, stepStart: 299, indexStart: 283327},
	{k: 1440, stepStart: 309, indexStart: 302527},
	{k: 1280, stepStart: 334, indexStart: 352527},
	{k: 1250, stepStart: 359, indexStart: 408777},
	{k: 1200, stepStart: 370, indexStart: 434121},
	{k: 1152, stepStart: 386, indexStart: 472521},
	{k: 1125, stepStart: 398, indexStart: 502521},
	{k: 1000, stepStart: 427, indexStart: 576761},
	{k: 960, stepStart: 462, indexStart: 677561},
	{k: 900, stepStart: 487, indexStart: 752561},
	{k: 800, stepStart: 533, indexStart: 899761},
	{k: 768, stepStart: 578, indexStart: 1061761},
	{k: 750, stepStart: 597, indexStart: 1133011},
	{k: 720, stepStart: 616, indexStart: 1205971},
	{k: 640, stepStart: 666, indexStart: 1405971},
	{k: 625, stepStart: 716, indexStart: 1630971},
	{k: 600, stepStart: 739, indexStart: 1736955},
	{k: 576, stepStart: 770, indexStart: 1885755},
	{k: 512, stepStart: 832, indexStart: 2195755},
	{k: 500, stepStart: 895, indexStart: 2550130},
	{k: 480, stepStart: 924, indexStart: 2717170},
	{k: 450, stepStart: 974, indexStart: 3017170},
	{k: 400, stepStart: 1065, indexStart: 3599570},
	{k: 384, stepStart: 1155, indexStart: 4247570},
	{k: 375, stepStart: 1193, indexStart: 4532570},
	{k: 360, stepStart: 1232, indexStart: 4832090},
	{k: 320, stepStart: 1331, indexStart: 5624090},
	{k: 300, stepStart: 1460, indexStart: 6785090},
	{k: 288, stepStart: 1539, indexStart: 7543490},
	{k: 256, stepStart: 1664, indexStart: 8793490},
	{k: 250, stepStart: 1789, indexStart: 10199740},
	{k: 240, stepStart: 1847, indexStart: 10867900},
	{k: 225, stepStart: 1946, indexStart: 12055900},
	{k: 200, stepStart: 2129, indexStart: 14398300},
	{k: 192, stepStart: 2308, indexStart: 16975900},
	{k: 180, stepStart: 2433, indexStart: 18850900},
	{k: 160, stepStart: 2661, indexStart: 22498900},
	{k: 150, stepStart: 2919, indexStart: 27142900},
	{k: 144, stepStart: 3078, indexStart: 30195700},
	{k: 128, stepStart: 3327, indexStart: 35175700},
	{k: 125, stepStart: 3576, indexStart: 40778200},
	{k: 120, stepStart: 3693, indexStart: 43473880},
	{k: 100, stepStart: 4113, indexStart: 53553880},
	{k: 96, stepStart: 4617, indexStart: 68069080},
	{k: 90, stepStart: 4865, indexStart: 75509080},
	{k: 80, stepStart: 5323, indexStart: 90165080},
	{k: 75, stepStart: 5838, indexStart: 108705080},
	{k: 72, stepStart: 6156, indexStart: 120916280},
	{k: 64, stepStart: 6654, indexStart: 140836280},
	{k: 60, stepStart: 7298, indexStart: 169816280},
	{k: 50, stepStart: 8228, indexStart: 214456280},
	{k: 48, stepStart: 9237, indexStart: 272574680},
	{k: 45, stepStart: 9734, indexStart: 302394680},
	{k: 40, stepStart: 10651, indexStart: 361082680},
	{k: 36, stepStart: 11915, indexStart: 452090680},
	{k: 32, stepStart: 13321, indexStart: 564570680},
	{k: 30, stepStart: 14614, indexStart: 680940680},
	{k: 25, stepStart: 16481, indexStart: 860172680},
	{k: 24, stepStart: 18509, indexStart: 1093798280},
	{k: 20, stepStart: 20625, indexStart: 1347718280},
	{k: 18, stepStart: 23909, indexStart: 1820614280},
	{k: 16, stepStart: 26751, indexStart: 2275334280},
	{k: 15, stepStart: 29373, indexStart: 2747294280},
	{k: 12, stepStart: 33798, indexStart: 3596894280},
	{k: 10, stepStart: 41669, indexStart: 5485934280},
	{k: 9, stepStart: 48478, indexStart: 7446926280},
	{k: 8, stepStart: 54439, indexStart: 9354446280},
	{k: 6, stepStart: 66880, indexStart: 13833206280},
	{k: 5, stepStart: 87211, indexStart: 23592086280},
	{k: 4, stepStart: 110471, indexStart: 36989846280},
	{k: 3, stepStart: 156411, indexStart: 70066646280},
	{k: 4, stepStart: 323591, indexStart: 230559446280},
	{k: 5, stepStart: 369531, indexStart: 263636246280},
	{k: 6, stepStart: 392791, indexStart: 277034006280},
	{k: 8, stepStart: 413122, indexStart: 286792886280},
	{k: 9, stepStart: 425563, indexStart: 291271646280},
	{k: 10, stepStart: 431524, indexStart: 293179166280},
	{k: 12, stepStart: 438333, indexStart: 295140158280},
	{k: 15, stepStart: 446204, indexStart: 297029198280},
	{k: 16, stepStart: 450629, indexStart: 297878798280},
	{k: 18, stepStart: 453251, indexStart: 298350758280},
	{k: 20, stepStart: 456093, indexStart: 298805478280},
	{k: 24, stepStart: 459377, indexStart: 299278374280},
	{k: 25, stepStart: 461493, indexStart: 299532294280},
	{k: 30, stepStart: 463521, indexStart: 299765919880},
	{k: 32, stepStart: 465388, indexStart: 299945151880},
	{k: 36, stepStart: 466681, indexStart: 300061521880},
	{k: 40, stepStart: 468087, indexStart: 300174001880},
	{k: 45, stepStart: 469351, indexStart: 300265009880},
	{k: 48, stepStart: 470268, indexStart: 300323697880},
	{k: 50, stepStart: 470765, indexStart: 300353517880},
	{k: 60, stepStart: 471774, indexStart: 300411636280},
	{k: 64, stepStart: 472704, indexStart: 300456276280},
	{k: 72, stepStart: 473348, indexStart: 300485256280},
	{k: 75, stepStart: 473846, indexStart: 300505176280},
	{k: 80, stepStart: 474164, indexStart: 300517387480},
	{k: 90, stepStart: 474679, indexStart: 300535927480},
	{k: 96, stepStart: 475137, indexStart: 300550583480},
	{k: 100, stepStart: 475385, indexStart: 300558023480},
	{k: 120, stepStart: 475889, indexStart: 300572538680},
	{k: 125, stepStart: 476309, indexStart: 300582618680},
	{k: 128, stepStart: 476426, indexStart: 300585314360},
	{k: 144, stepStart: 476675, indexStart: 300590916860},
	{k: 150, stepStart: 476924, indexStart: 300595896860},
	{k: 160, stepStart: 477083, indexStart: 300598949660},
	{k: 180, stepStart: 477341, indexStart: 300603593660},
	{k: 192, stepStart: 477569, indexStart: 300607241660},
	{k: 200, stepStart: 477694, indexStart: 300609116660},
	{k: 225, stepStart: 477873, indexStart: 300611694260},
	{k: 240, stepStart: 478056, indexStart: 300614036660},
	{k: 250, stepStart: 478155, indexStart: 300615224660},
	{k: 256, stepStart: 478213, indexStart: 300615892820},
	{k: 288, stepStart: 478338, indexStart: 300617299070},
	{k: 300, stepStart: 478463, indexStart: 300618549070},
	{k: 320, stepStart: 478542, indexStart: 300619307470},
	{k: 360, stepStart: 478671, indexStart: 300620468470},
	{k: 375, stepStart: 478770, indexStart: 300621260470},
	{k: 384, stepStart: 478809, indexStart: 300621559990},
	{k: 400, stepStart: 478847, indexStart: 300621844990},
	{k: 450, stepStart: 478937, indexStart: 300622492990},
	{k: 480, stepStart: 479028, indexStart: 300623075390},
	{k: 500, stepStart: 479078, indexStart: 300623375390},
	{k: 512, stepStart: 479107, indexStart: 300623542430},
	{k: 576, stepStart: 479170, indexStart: 300623896805},
	{k: 600, stepStart: 479232, indexStart: 300624206805},
	{k: 625, stepStart: 479263, indexStart: 300624355605},
	{k: 640, stepStart: 479286, indexStart: 300624461589},
	{k: 720, stepStart: 479336, indexStart: 300624686589},
	{k: 750, stepStart: 479386, indexStart: 300624886589},
	{k: 768, stepStart: 479405, indexStart: 300624959549},
	{k: 800, stepStart: 479424, indexStart: 300625030799},
	{k: 900, stepStart: 479469, indexStart: 300625192799},
	{k: 960, stepStart: 479515, indexStart: 300625339999},
	{k: 1000, stepStart: 479540, indexStart: 300625414999},
	{k: 1125, stepStart: 479575, indexStart: 300625515799},
	{k: 1152, stepStart: 479604, indexStart: 300625590039},
	{k: 1200, stepStart: 479616, indexStart: 300625620039},
	{k: 1250, stepStart: 479632, indexStart: 300625658439},
	{k: 1280, stepStart: 479643, indexStart: 300625683783},
	{k: 1440, stepStart: 479668, indexStart: 300625740033},
	{k: 1500, stepStart: 479693, indexStart: 300625790033},
	{k: 1536, stepStart: 479703, indexStart: 300625809233},
	{k: 1600, stepStart: 479713, indexStart: 300625827983},
	{k: 1800, stepStart: 479735, indexStart: 300625867583},
	{k: 1875, stepStart: 479755, indexStart: 300625899583},
	{k: 1920, stepStart: 479763, indexStart: 300625911871},
	{k: 2000, stepStart: 479770, indexStart: 300625922371},
	{k: 2250, stepStart: 479788, indexStart: 300625948291},
	{k: 2304, stepStart: 479802, indexStart: 300625966211},
	{k: 2400, stepStart: 479809, indexStart: 300625974961},
	{k: 2500, stepStart: 479816, indexStart: 300625983361},
	{k: 2560, stepStart: 479822, indexStart: 300625990273},
	{k: 2880, stepStart: 479835, indexStart: 300626004898},
	{k: 3000, stepStart: 479847, indexStart: 300626016898},
	{k: 3200, stepStart: 479855, indexStart: 300626024578},
	{k: 3600, stepStart: 479868, indexStart: 300626036278},
	{k: 3750, stepStart: 479878, indexStart: 300626044278},
	{k: 3840, stepStart: 479882, indexStart: 300626047350},
	{k: 4000, stepStart: 479886, indexStart: 300626050350},
	{k: 4500, stepStart: 479895, indexStart: 300626056830},
	{k: 4608, stepStart: 479902, indexStart: 300626061310},
	{k: 4800, stepStart: 479905, indexStart: 300626063185},
	{k: 5000, stepStart: 479909, indexStart: 300626065585},
	{k: 5625, stepStart: 479916, indexStart: 300626069617},
	{k: 5760, stepStart: 479922, indexStart: 300626072689},
	{k: 6000, stepStart: 479924, indexStart: 300626073689},
	{k: 6400, stepStart: 479928, indexStart: 300626075609},
	{k: 7200, stepStart: 479934, indexStart: 300626078309},
	{k: 7500, stepStart: 479939, indexStart: 300626080309},
	{k: 7680, stepStart: 479941, indexStart: 300626081077},
	{k: 8000, stepStart: 479943, indexStart: 300626081827},
	{k: 9000, stepStart: 479948, indexStart: 300626083627},
	{k: 9600, stepStart: 479952, indexStart: 300626084907},
	{k: 10000, stepStart: 479955, indexStart: 300626085807},
	{k: 11250, stepStart: 479958, indexStart: 300626086671},
	{k: 11520, stepStart: 479961, indexStart: 300626087439},
	{k: 12000, stepStart: 479963, indexStart: 300626087939},
	{k: 12800, stepStart: 479965, indexStart: 300626088419},
	{k: 14400, stepStart: 479968, indexStart: 300626089094},
	{k: 15000, stepStart: 479970, indexStart: 300626089494},
	{k: 16000, stepStart: 479972, indexStart: 300626089878},
	{k: 18000, stepStart: 479974, indexStart: 300626090238},
	{k: 19200, stepStart: 479977, indexStart: 300626090718},
	{k: 20000, stepStart: 479978, indexStart: 300626090868},
	{k: 22500, stepStart: 479980, indexStart: 300626091156},
	{k: 23040, stepStart: 479981, indexStart: 300626091284},
	{k: 24000, stepStart: 479982, indexStart: 300626091409},
	{k: 28800, stepStart: 479984, indexStart: 300626091649},
	{k: 32000, stepStart: 479986, indexStart: 300626091849},
	{k: 36000, stepStart: 479988, indexStart: 300626092029},
	{k: 40000, stepStart: 479989, indexStart: 300626092109},
	{k: 45000, stepStart: 479990, indexStart: 300626092181},
	{k: 48000, stepStart: 479991, indexStart: 300626092245},
	{k: 57600, stepStart: 479992, indexStart: 300626092305},
	{k: 60000, stepStart: 479993, indexStart: 300626092355},
	{k: 72000, stepStart: 479994, indexStart: 300626092403},
	{k: 80000, stepStart: 479995, indexStart: 300626092443},
	{k: 96000, stepStart: 479996, indexStart: 300626092479},
	{k: 120000, stepStart: 479997, indexStart: 300626092509},
	{k: 180000, stepStart: 479998, indexStart: 300626092533},
	{k: 288000, stepStart: 479999, indexStart: 300626092549},
	{k: 2880000, stepStart: 480000, indexStart: 300626092559},
}
