package credit

// Survival probabilities published for the ISDA standard model at
// observationTimes, one row per market scenario.

var expectedISDA = [][]float64{
	{
		0.998772746815168, 0.996322757048216, 0.992659036212158, 0.985174753005029,
		0.959541054444166, 0.9345154655283, 0.897874320219939, 0.862605325653124,
		0.830790530716993, 0.80016566917562, 0.76968842828467, 0.740364207356242,
		0.71215720464425, 0.685024855452902, 0.658926216751093,
	},
	{
		0.996266535762958, 0.988841371514657, 0.977807258018988, 0.96475844963628,
		0.953395823781617, 0.940590393592274, 0.933146036536171, 0.927501935763199,
		0.924978347338877, 0.923516383873675, 0.919646843289677, 0.914974439245307,
		0.91032577405212, 0.905700727101315, 0.901099178396858,
	},
	{
		0.994488823839325, 0.983690222697363, 0.967711777571664, 0.935677618299157,
		0.875533583554252, 0.819255475760025, 0.7666904278069, 0.717503794565525,
		0.671435362513808, 0.628322474825315, 0.587977867136078, 0.550223788092265,
		0.514893899760578, 0.481832544772127, 0.450894060523028,
	},
	{
		0.99238650617037, 0.977332973057625, 0.955179740225657, 0.92187587198518,
		0.868032006457467, 0.817353939709416, 0.751100020583073, 0.690170357851426,
		0.622562049244094, 0.561519352597547, 0.500515112466997, 0.44610942528539,
		0.397617603088025, 0.354396812361283, 0.315874095202052,
	},
	{
		0.999986111241871, 0.999958334304303, 0.999916670344636, 0.999831033196934,
		0.999662094963152, 0.999493185285761, 0.999324304350342, 0.999155451994703,
		0.998986628218491, 0.998817832978659, 0.998649066279251, 0.998480328100177,
		0.998311618432194, 0.998142937270482, 0.997974284610226,
	},
}

var expectedMarkitFix = [][]float64{
	{
		0.998773616100865, 0.996325358510497, 0.992664220011069, 0.985181033285486,
		0.959551128356433, 0.934529141029508, 0.897893062747179, 0.862628725130658,
		0.830817532293803, 0.800195970143901, 0.76972190245315, 0.740400570243092,
		0.712196187570045, 0.685066206017066, 0.658969697981512,
	},
	{
		0.996272873932676, 0.988860244428938, 0.977844583012059, 0.964805380714707,
		0.953429040991605, 0.940617833909825, 0.933169293548597, 0.927521552929219,
		0.924995002753253, 0.923530307620416, 0.91965942070523, 0.914986149602945,
		0.910336625838319, 0.905710728738695, 0.901108338244616,
	},
	{
		0.994492541382389, 0.983716053360113, 0.967769880036333, 0.935798775210736,
		0.875741081454824, 0.819537657320969, 0.766996460740263, 0.717827034617184,
		0.671770999435863, 0.628667500941574, 0.588329694303598, 0.550580121735183,
		0.515252711846802, 0.482192049049632, 0.451252689837008,
	},
	{
		0.992434753056402, 0.977475525071675, 0.955458402114146, 0.923257693140384,
		0.86924227242564, 0.818402338488625, 0.752150342806546, 0.691215773405857,
		0.623608833084194, 0.562557270491733, 0.50153493334764, 0.447102836461508,
		0.3985783104631, 0.355320200669978, 0.316756937570093,
	},
	{
		0.999986111408132, 0.999958334803071, 0.999916671342131, 0.999831035053453,
		0.999662097437689, 0.999493188187127, 0.999324307673036, 0.9991554557374,
		0.998986632383511, 0.998817837566403, 0.998649071291, 0.998480333536109,
		0.998311624292164, 0.998142943554348, 0.997974291317845,
	},
}
