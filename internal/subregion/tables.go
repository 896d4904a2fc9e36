package subregion

import "github.com/alexiusacademia/gosteam/internal/powersum"

// Coefficients of the backward equations v(p,T) for subregions 3a to 3z
// (IAPWS supplementary release SR5-05, Tables 4 to 29).

var table3a = powersum.Table{
	{I: -12, J: 5, N: 0.00110879558823853},
	{I: -12, J: 10, N: 572.616740810616},
	{I: -12, J: 12, N: -76705.1948380852},
	{I: -10, J: 5, N: -0.0253321069529674},
	{I: -10, J: 10, N: 6280.08049345689},
	{I: -10, J: 12, N: 234105.654131876},
	{I: -8, J: 5, N: 0.216867826045856},
	{I: -8, J: 8, N: -156.237904341963},
	{I: -8, J: 10, N: -26989.3956176613},
	{I: -6, J: 1, N: -0.000180407100085505},
	{I: -5, J: 1, N: 0.00116732227668261},
	{I: -5, J: 5, N: 26.698704085604},
	{I: -5, J: 10, N: 28277.6617243286},
	{I: -4, J: 8, N: -2424.31520029523},
	{I: -3, J: 0, N: 0.000435217323022733},
	{I: -3, J: 1, N: -0.0122494831387441},
	{I: -3, J: 3, N: 1.79357604019989},
	{I: -3, J: 6, N: 44.2729521058314},
	{I: -2, J: 0, N: -0.00593223489018342},
	{I: -2, J: 2, N: 0.453186261685774},
	{I: -2, J: 3, N: 1.3582570312914},
	{I: -1, J: 0, N: 0.0408748415856745},
	{I: -1, J: 1, N: 0.474686397863312},
	{I: -1, J: 2, N: 1.18646814997915},
	{I: 0, J: 0, N: 0.546987265727549},
	{I: 0, J: 1, N: 0.195266770452643},
	{I: 1, J: 0, N: -0.0502268790869663},
	{I: 1, J: 2, N: -0.369645308193377},
	{I: 2, J: 0, N: 0.0063382803752842},
	{I: 2, J: 2, N: 0.0797441793901017},
}

var table3b = powersum.Table{
	{I: -12, J: 10, N: -0.0827670470003621},
	{I: -12, J: 12, N: 41.6887126010565},
	{I: -10, J: 8, N: 0.0483651982197059},
	{I: -10, J: 14, N: -29103.2084950276},
	{I: -8, J: 8, N: -111.422582236948},
	{I: -6, J: 5, N: -0.0202300083904014},
	{I: -6, J: 6, N: 294.002509338515},
	{I: -6, J: 8, N: 140.244997609658},
	{I: -5, J: 5, N: -344.384158811459},
	{I: -5, J: 8, N: 361.182452612149},
	{I: -5, J: 10, N: -1406.99677420738},
	{I: -4, J: 2, N: -0.00202023902676481},
	{I: -4, J: 4, N: 171.346792457471},
	{I: -4, J: 5, N: -4.25597804058632},
	{I: -3, J: 0, N: 6.91346085000334e-06},
	{I: -3, J: 1, N: 0.00151140509678925},
	{I: -3, J: 2, N: -0.0416375290166236},
	{I: -3, J: 3, N: -41.3754957011042},
	{I: -3, J: 5, N: -50.6673295721637},
	{I: -2, J: 0, N: -0.000572212965569023},
	{I: -2, J: 2, N: 6.08817368401785},
	{I: -2, J: 5, N: 23.9600660256161},
	{I: -1, J: 0, N: 0.0122261479925384},
	{I: -1, J: 2, N: 2.16356057692938},
	{I: 0, J: 0, N: 0.398198903368642},
	{I: 0, J: 1, N: -0.116892827834085},
	{I: 1, J: 0, N: -0.102845919373532},
	{I: 1, J: 2, N: -0.492676637589284},
	{I: 2, J: 0, N: 0.065554045640679},
	{I: 3, J: 2, N: -0.24046253507853},
	{I: 4, J: 0, N: -0.0269798180310075},
	{I: 4, J: 1, N: 0.128369435967012},
}

var table3c = powersum.Table{
	{I: -12, J: 6, N: 3.1196778876303},
	{I: -12, J: 8, N: 27671.3458847564},
	{I: -12, J: 10, N: 32258310.3403269},
	{I: -10, J: 6, N: -342.416065095363},
	{I: -10, J: 8, N: -899732.529907377},
	{I: -10, J: 10, N: -79389204.9821251},
	{I: -8, J: 5, N: 95.3193003217388},
	{I: -8, J: 6, N: 2297.84742345072},
	{I: -8, J: 7, N: 175336.675322499},
	{I: -6, J: 8, N: 7912143.65222792},
	{I: -5, J: 1, N: 3.19933345844209e-05},
	{I: -5, J: 4, N: -65.9508863555767},
	{I: -5, J: 7, N: -833426.563212851},
	{I: -4, J: 2, N: 0.0645734680583292},
	{I: -4, J: 8, N: -3820310.20570813},
	{I: -3, J: 0, N: 4.06398848470079e-05},
	{I: -3, J: 3, N: 31.0327498492008},
	{I: -2, J: 0, N: -0.000892996718483724},
	{I: -2, J: 4, N: 234.604891591616},
	{I: -2, J: 5, N: 3775.15668966951},
	{I: -1, J: 0, N: 0.0158646812591361},
	{I: -1, J: 1, N: 0.707906336241843},
	{I: -1, J: 2, N: 12.601622514657},
	{I: 0, J: 0, N: 0.736143655772152},
	{I: 0, J: 1, N: 0.676544268999101},
	{I: 0, J: 2, N: -17.8100588189137},
	{I: 1, J: 0, N: -0.156531975531713},
	{I: 1, J: 2, N: 11.7707430048158},
	{I: 2, J: 0, N: 0.0840143653860447},
	{I: 2, J: 1, N: -0.186442467471949},
	{I: 2, J: 3, N: -44.0170203949645},
	{I: 2, J: 7, N: 1232904.23502494},
	{I: 3, J: 0, N: -0.0240650039730845},
	{I: 3, J: 7, N: -1070777.16660869},
	{I: 8, J: 1, N: 0.0438319858566475},
}

var table3d = powersum.Table{
	{I: -12, J: 4, N: -4.52484847171645e-10},
	{I: -12, J: 6, N: 3.15210389538801e-05},
	{I: -12, J: 7, N: -0.00214991352047545},
	{I: -12, J: 10, N: 508.058874808345},
	{I: -12, J: 12, N: -12712303.6845932},
	{I: -12, J: 16, N: 1153711331204.97},
	{I: -10, J: 0, N: -1.97805728776273e-16},
	{I: -10, J: 2, N: 2.41554806033972e-11},
	{I: -10, J: 4, N: -1.56481703640525e-06},
	{I: -10, J: 6, N: 0.00277211346836625},
	{I: -10, J: 8, N: -20.3578994462286},
	{I: -10, J: 10, N: 1443694.89909053},
	{I: -10, J: 14, N: -41125421794.6539},
	{I: -8, J: 3, N: 6.23449786243773e-06},
	{I: -8, J: 7, N: -22.1774281146038},
	{I: -8, J: 8, N: -68931.5087933158},
	{I: -8, J: 10, N: -19541952.5060713},
	{I: -6, J: 6, N: 3163.73510564015},
	{I: -6, J: 8, N: 2240407.54426988},
	{I: -5, J: 1, N: -4.36701347922356e-06},
	{I: -5, J: 2, N: -0.000404213852833996},
	{I: -5, J: 5, N: -348.153203414663},
	{I: -5, J: 7, N: -385294.213555289},
	{I: -4, J: 0, N: 1.35203700099403e-07},
	{I: -4, J: 1, N: 0.000134648383271089},
	{I: -4, J: 7, N: 125031.835351736},
	{I: -3, J: 2, N: 0.0968123678455841},
	{I: -3, J: 4, N: 225.660517512438},
	{I: -2, J: 0, N: -0.000190102435341872},
	{I: -2, J: 1, N: -0.0299628410819229},
	{I: -1, J: 0, N: 0.00500833915372121},
	{I: -1, J: 1, N: 0.387842482998411},
	{I: -1, J: 5, N: -1385.35367777182},
	{I: 0, J: 0, N: 0.870745245971773},
	{I: 0, J: 2, N: 1.71946252068742},
	{I: 1, J: 0, N: -0.0326650121426383},
	{I: 1, J: 6, N: 4980.44171727877},
	{I: 3, J: 0, N: 0.00551478022765087},
}

var table3e = powersum.Table{
	{I: -12, J: 14, N: 715815808.404721},
	{I: -12, J: 16, N: -114328360753.449},
	{I: -10, J: 3, N: 3.7653100201572e-12},
	{I: -10, J: 6, N: -9.03983668691157e-05},
	{I: -10, J: 10, N: 665695.908836252},
	{I: -10, J: 14, N: 5353641749.60127},
	{I: -10, J: 16, N: 79497740233.5603},
	{I: -8, J: 7, N: 92.2230563421437},
	{I: -8, J: 8, N: -142586.073991215},
	{I: -8, J: 10, N: -1117963.81424162},
	{I: -6, J: 6, N: 8961.2162964076},
	{I: -5, J: 6, N: -6699.89239070491},
	{I: -4, J: 2, N: 0.00451242538486834},
	{I: -4, J: 4, N: -33.9731325977713},
	{I: -3, J: 2, N: -1.20523111552278},
	{I: -3, J: 6, N: 47599.2667717124},
	{I: -3, J: 7, N: -266627.750390341},
	{I: -2, J: 0, N: -0.000153314954386524},
	{I: -2, J: 1, N: 0.305638404828265},
	{I: -2, J: 3, N: 123.654999499486},
	{I: -2, J: 4, N: -1043.90794213011},
	{I: -1, J: 0, N: -0.0157496516174308},
	{I: 0, J: 0, N: 0.685331118940253},
	{I: 0, J: 1, N: 1.78373462873903},
	{I: 1, J: 0, N: -0.54467412487891},
	{I: 1, J: 4, N: 2045.29931318843},
	{I: 1, J: 6, N: -22834.2359328752},
	{I: 2, J: 0, N: 0.413197481515899},
	{I: 2, J: 2, N: -34.1931835910405},
}

var table3f = powersum.Table{
	{I: 0, J: -3, N: -2.51756547792325e-08},
	{I: 0, J: -2, N: 6.01307193668763e-06},
	{I: 0, J: -1, N: -0.00100615977450049},
	{I: 0, J: 0, N: 0.999969140252192},
	{I: 0, J: 1, N: 2.14107759236486},
	{I: 0, J: 2, N: -16.5175571959086},
	{I: 1, J: -1, N: -0.00141987303638727},
	{I: 1, J: 1, N: 2.69251915156554},
	{I: 1, J: 2, N: 34.9741815858722},
	{I: 1, J: 3, N: -30.0208695771783},
	{I: 2, J: 0, N: -1.31546288252539},
	{I: 2, J: 1, N: -8.39091277286169},
	{I: 3, J: -5, N: 1.81545608337015e-10},
	{I: 3, J: -2, N: -0.000591099206478909},
	{I: 3, J: 0, N: 1.52115067087106},
	{I: 4, J: -3, N: 2.52956470663225e-05},
	{I: 5, J: -8, N: 1.00726265203786e-15},
	{I: 5, J: 1, N: -1.4977453386065},
	{I: 6, J: -6, N: -7.93940970562969e-10},
	{I: 7, J: -4, N: -0.000150290891264717},
	{I: 7, J: 1, N: 1.51205531275133},
	{I: 10, J: -6, N: 4.70942606221652e-06},
	{I: 12, J: -10, N: 1.95049710391712e-13},
	{I: 12, J: -8, N: -9.11627886266077e-09},
	{I: 12, J: -4, N: 0.000604374640201265},
	{I: 14, J: -12, N: -2.25132933900136e-16},
	{I: 14, J: -10, N: 6.10916973582981e-12},
	{I: 14, J: -8, N: -3.03063908043404e-07},
	{I: 14, J: -6, N: -1.37796070798409e-05},
	{I: 14, J: -4, N: -0.000919296736666106},
	{I: 16, J: -10, N: 6.39288223132545e-10},
	{I: 16, J: -8, N: 7.53259479898699e-07},
	{I: 18, J: -12, N: -4.00321478682929e-13},
	{I: 18, J: -10, N: 7.56140294351614e-09},
	{I: 20, J: -12, N: -9.12082054034891e-12},
	{I: 20, J: -10, N: -2.37612381140539e-08},
	{I: 20, J: -6, N: 2.69586010591874e-05},
	{I: 22, J: -12, N: -7.32828135157839e-11},
	{I: 24, J: -12, N: 2.4199557830666e-10},
	{I: 24, J: -4, N: -0.000405735532730322},
	{I: 28, J: -12, N: 1.89424143498011e-10},
	{I: 32, J: -12, N: -4.86632965074563e-10},
}

var table3g = powersum.Table{
	{I: -12, J: 7, N: 4.12209020652996e-05},
	{I: -12, J: 12, N: -1149872.38280587},
	{I: -12, J: 14, N: 9481808850.3208},
	{I: -12, J: 18, N: -1.95788865718971e+17},
	{I: -12, J: 22, N: 4.962507048713e+24},
	{I: -12, J: 24, N: -1.05549884548496e+28},
	{I: -10, J: 14, N: -758642165988.278},
	{I: -10, J: 20, N: -9.22172769596101e+22},
	{I: -10, J: 24, N: 7.25379072059348e+29},
	{I: -8, J: 7, N: -61.7718249205859},
	{I: -8, J: 8, N: 10755.5033344858},
	{I: -8, J: 10, N: -37954580.2336487},
	{I: -8, J: 12, N: 228646846221.831},
	{I: -6, J: 8, N: -4997410.93010619},
	{I: -6, J: 22, N: -2.80214310054101e+30},
	{I: -5, J: 7, N: 1049154.06769586},
	{I: -5, J: 20, N: 6.13754229168619e+27},
	{I: -4, J: 22, N: 8.02056715528378e+31},
	{I: -3, J: 7, N: -29861781.9828065},
	{I: -2, J: 3, N: -91.0782540134681},
	{I: -2, J: 5, N: 135033.227281565},
	{I: -2, J: 14, N: -7.12949383408211e+18},
	{I: -2, J: 24, N: -1.04578785289542e+36},
	{I: -1, J: 2, N: 30.4331584444093},
	{I: -1, J: 8, N: 5932507979.59445},
	{I: -1, J: 18, N: -3.64174062110798e+27},
	{I: 0, J: 0, N: 0.921791403532461},
	{I: 0, J: 1, N: -0.337693609657471},
	{I: 0, J: 2, N: -72.4644143758508},
	{I: 1, J: 0, N: -0.110480239272601},
	{I: 1, J: 1, N: 5.36516031875059},
	{I: 1, J: 3, N: -2914.41872156205},
	{I: 3, J: 24, N: 6.16338176535305e+39},
	{I: 5, J: 22, N: -1.2088917586118e+38},
	{I: 6, J: 12, N: 8.18396024524612e+22},
	{I: 8, J: 3, N: 940781944.835829},
	{I: 10, J: 0, N: -36727.9669545448},
	{I: 10, J: 6, N: -8375139317986550.0},
}

var table3h = powersum.Table{
	{I: -12, J: 8, N: 0.0561379678887577},
	{I: -12, J: 12, N: 7741354215.87083},
	{I: -10, J: 4, N: 1.11482975877938e-09},
	{I: -10, J: 6, N: -0.00143987128208183},
	{I: -10, J: 8, N: 1936.9655876492},
	{I: -10, J: 10, N: -605971823.585005},
	{I: -10, J: 14, N: 17195156812433.7},
	{I: -10, J: 16, N: -1.85461154985145e+16},
	{I: -8, J: 0, N: 3.8785116807801e-17},
	{I: -8, J: 1, N: -3.95464327846105e-14},
	{I: -8, J: 6, N: -170.875935679023},
	{I: -8, J: 7, N: -2120.1062070122},
	{I: -8, J: 8, N: 17768333.7348191},
	{I: -6, J: 4, N: 11.0177443629575},
	{I: -6, J: 6, N: -234396.091693313},
	{I: -6, J: 8, N: -6561744.21999594},
	{I: -5, J: 2, N: 1.56362212977396e-05},
	{I: -5, J: 3, N: -2.129462570214},
	{I: -5, J: 4, N: 13.5249306374858},
	{I: -4, J: 2, N: 0.177189164145813},
	{I: -4, J: 4, N: 1394.99167345464},
	{I: -3, J: 1, N: -0.00703670932036388},
	{I: -3, J: 2, N: -0.152011044389648},
	{I: -2, J: 0, N: 9.81916922991113e-05},
	{I: -1, J: 0, N: 0.00147199658618076},
	{I: -1, J: 2, N: 20.2618487025578},
	{I: 0, J: 0, N: 0.89934551894424},
	{I: 1, J: 0, N: -0.211346402240858},
	{I: 1, J: 2, N: 24.9971752957491},
}

var table3i = powersum.Table{
	{I: 0, J: 0, N: 1.06905684359136},
	{I: 0, J: 1, N: -1.48620857922333},
	{I: 0, J: 10, N: 259862256980408.0},
	{I: 1, J: -4, N: -4.46352055678749e-12},
	{I: 1, J: -2, N: -5.66620757170032e-07},
	{I: 1, J: -1, N: -0.00235302885736849},
	{I: 1, J: 0, N: -0.269226321968839},
	{I: 2, J: 0, N: 9.22024992944392},
	{I: 3, J: -5, N: 3.57633505503772e-12},
	{I: 3, J: 0, N: -17.3942565562222},
	{I: 4, J: -3, N: 7.00681785556229e-06},
	{I: 4, J: -2, N: -0.000267050351075768},
	{I: 4, J: -1, N: -2.31779669675624},
	{I: 5, J: -6, N: -7.53533046979752e-13},
	{I: 5, J: -1, N: 4.81337131452891},
	{I: 5, J: 12, N: -2.23286270422356e+21},
	{I: 7, J: -4, N: -1.18746004987383e-05},
	{I: 7, J: -3, N: 0.00646412934136496},
	{I: 8, J: -6, N: -4.10588536330937e-10},
	{I: 8, J: 10, N: 4.22739537057241e+19},
	{I: 10, J: -8, N: 3.13698180473812e-13},
	{I: 12, J: -12, N: 1.6439533434504e-24},
	{I: 12, J: -6, N: -3.39823323754373e-06},
	{I: 12, J: -4, N: -0.0135268639905021},
	{I: 14, J: -10, N: -7.23252514211625e-15},
	{I: 14, J: -8, N: 1.84386437538366e-09},
	{I: 14, J: -4, N: -0.0463959533752385},
	{I: 14, J: 5, N: -99226310037675.0},
	{I: 18, J: -12, N: 6.88169154439335e-17},
	{I: 18, J: -10, N: -2.22620998452197e-11},
	{I: 18, J: -8, N: -5.40843018624083e-08},
	{I: 18, J: -6, N: 0.00345570606200257},
	{I: 18, J: 2, N: 42227580030.4086},
	{I: 20, J: -12, N: -1.26974478770487e-15},
	{I: 20, J: -10, N: 9.27237985153679e-10},
	{I: 22, J: -12, N: 6.12670812016489e-14},
	{I: 24, J: -12, N: -7.22693924063497e-12},
	{I: 24, J: -8, N: -0.000383669502636822},
	{I: 32, J: -10, N: 0.000374684572410204},
	{I: 32, J: -5, N: -93197.6897511086},
	{I: 36, J: -10, N: -0.0247690616026922},
	{I: 36, J: -8, N: 65.8110546759474},
}

var table3j = powersum.Table{
	{I: 0, J: -1, N: -0.00011137131739554},
	{I: 0, J: 0, N: 1.00342892423685},
	{I: 0, J: 1, N: 5.30615581928979},
	{I: 1, J: -2, N: 1.79058760078792e-06},
	{I: 1, J: -1, N: -0.000728541958464774},
	{I: 1, J: 1, N: -18.7576133371704},
	{I: 2, J: -1, N: 0.00199060874071849},
	{I: 2, J: 1, N: 24.357475537729},
	{I: 3, J: -2, N: -0.000177040785499444},
	{I: 4, J: -2, N: -0.0025968038522713},
	{I: 4, J: 2, N: -198.704578406823},
	{I: 5, J: -3, N: 7.38627790224287e-05},
	{I: 5, J: -2, N: -0.00236264692844138},
	{I: 5, J: 0, N: -1.61023121314333},
	{I: 6, J: 3, N: 6223.22971786473},
	{I: 10, J: -6, N: -9.60754116701669e-09},
	{I: 12, J: -8, N: -5.10572269720488e-11},
	{I: 12, J: -3, N: 0.00767373781404211},
	{I: 14, J: -10, N: 6.63855469485254e-15},
	{I: 14, J: -8, N: -7.17590735526745e-10},
	{I: 14, J: -5, N: 1.46564542926508e-05},
	{I: 16, J: -10, N: 3.09029474277013e-12},
	{I: 18, J: -12, N: -4.64216300971708e-16},
	{I: 20, J: -12, N: -3.90499637961161e-14},
	{I: 20, J: -10, N: -2.36716126781431e-10},
	{I: 24, J: -12, N: 4.54652854268717e-12},
	{I: 24, J: -6, N: -0.00422271787482497},
	{I: 28, J: -12, N: 2.83911742354706e-11},
	{I: 28, J: -5, N: 2.70929002720228},
}

var table3k = powersum.Table{
	{I: -2, J: 10, N: -401215699.576099},
	{I: -2, J: 12, N: 48450147831.8406},
	{I: -1, J: -5, N: 3.94721471363678e-15},
	{I: -1, J: 6, N: 37262.9967374147},
	{I: 0, J: -12, N: -3.69794374168666e-30},
	{I: 0, J: -6, N: -3.80436407012452e-15},
	{I: 0, J: -2, N: 4.75361629970233e-07},
	{I: 0, J: -1, N: -0.000879148916140706},
	{I: 0, J: 0, N: 0.844317863844331},
	{I: 0, J: 1, N: 12.24331626566},
	{I: 0, J: 2, N: -104.529634830279},
	{I: 0, J: 3, N: 589.702771277429},
	{I: 0, J: 14, N: -29102685116444.4},
	{I: 1, J: -3, N: 1.7034307284185e-06},
	{I: 1, J: -2, N: -0.000277617606975748},
	{I: 1, J: 0, N: -3.44709605486686},
	{I: 1, J: 1, N: 22.1333862447095},
	{I: 1, J: 2, N: -194.646110037079},
	{I: 2, J: -8, N: 8.08354639772825e-16},
	{I: 2, J: -6, N: -1.8084520914547e-11},
	{I: 2, J: -3, N: -6.96664158132412e-06},
	{I: 2, J: -2, N: -0.00181057560300994},
	{I: 2, J: 0, N: 2.55830298579027},
	{I: 2, J: 4, N: 3289.13873658481},
	{I: 5, J: -12, N: -1.73270241249904e-19},
	{I: 5, J: -6, N: -6.61876792558034e-07},
	{I: 5, J: -3, N: -0.0039568892342125},
	{I: 6, J: -12, N: 6.04203299819132e-18},
	{I: 6, J: -10, N: -4.00879935920517e-14},
	{I: 6, J: -8, N: 1.60751107464958e-09},
	{I: 6, J: -5, N: 3.83719409025556e-05},
	{I: 8, J: -12, N: -6.49565446702457e-15},
	{I: 10, J: -12, N: -1.49095328506e-12},
	{I: 12, J: -10, N: 5.41449377329581e-09},
}

var table3l = powersum.Table{
	{I: -12, J: 14, N: 2607020586.47537},
	{I: -12, J: 16, N: -188277213604704.0},
	{I: -12, J: 18, N: 5.54923870289667e+18},
	{I: -12, J: 20, N: -7.58966946387758e+22},
	{I: -12, J: 22, N: 4.13865186848908e+26},
	{I: -10, J: 14, N: -815038000738.06},
	{I: -10, J: 24, N: -3.81458260489955e+32},
	{I: -8, J: 6, N: -0.0123239564600519},
	{I: -8, J: 10, N: 22609563.1437174},
	{I: -8, J: 12, N: -495017809506.72},
	{I: -8, J: 14, N: 5294829964228630.0},
	{I: -8, J: 18, N: -4.44359478746295e+22},
	{I: -8, J: 24, N: 5.21635864527315e+34},
	{I: -8, J: 36, N: -4.87095672740742e+54},
	{I: -6, J: 8, N: -714430.209937547},
	{I: -5, J: 4, N: 0.127868634615495},
	{I: -5, J: 5, N: -10.0752127917598},
	{I: -4, J: 7, N: 7774514.3796099},
	{I: -4, J: 16, N: -1.08105480796471e+24},
	{I: -3, J: 1, N: -3.57578581169659e-06},
	{I: -3, J: 3, N: -2.12857169423484},
	{I: -3, J: 18, N: 2.70706111085238e+29},
	{I: -3, J: 20, N: -6.95953622348829e+32},
	{I: -2, J: 2, N: 0.11060902747228},
	{I: -2, J: 3, N: 72.1559163361354},
	{I: -2, J: 10, N: -306367307532219.0},
	{I: -1, J: 0, N: 2.6583961888553e-05},
	{I: -1, J: 1, N: 0.0253392392889754},
	{I: -1, J: 3, N: -214.443041836579},
	{I: 0, J: 0, N: 0.937846601489667},
	{I: 0, J: 1, N: 2.231840431017},
	{I: 0, J: 2, N: 33.8401222509191},
	{I: 0, J: 12, N: 4.94237237179718e+20},
	{I: 1, J: 0, N: -0.198068404154428},
	{I: 1, J: 16, N: -1.4141534988114e+30},
	{I: 2, J: 1, N: -99.3862421613651},
	{I: 4, J: 0, N: 125.070534142731},
	{I: 5, J: 0, N: -996.473529004439},
	{I: 5, J: 1, N: 47313.7909872765},
	{I: 6, J: 14, N: 1.16662121219322e+32},
	{I: 10, J: 4, N: -3158749762715330.0},
	{I: 10, J: 12, N: -4.45703369196945e+32},
	{I: 14, J: 10, N: 6.42794932373694e+32},
}

var table3m = powersum.Table{
	{I: 0, J: 0, N: 0.811384363481847},
	{I: 3, J: 0, N: -5681.99310990094},
	{I: 8, J: 0, N: -17865719817.2556},
	{I: 20, J: 2, N: 7.95537657613427e+31},
	{I: 1, J: 5, N: -81456.8209346872},
	{I: 3, J: 5, N: -65977456.7602874},
	{I: 4, J: 5, N: -15286114865.9302},
	{I: 5, J: 5, N: -560165667510.446},
	{I: 1, J: 6, N: 458384.828593949},
	{I: 6, J: 6, N: -38575400038384.8},
	{I: 2, J: 7, N: 45373580.0004273},
	{I: 4, J: 8, N: 939454935735.563},
	{I: 14, J: 8, N: 2.66572856432938e+27},
	{I: 2, J: 10, N: -5475783138.99097},
	{I: 5, J: 10, N: 200725701112386.0},
	{I: 3, J: 12, N: 1850072455632.39},
	{I: 0, J: 14, N: 185135446.828337},
	{I: 1, J: 14, N: -170451090076.385},
	{I: 1, J: 18, N: 157890366037614.0},
	{I: 1, J: 20, N: -2025305097487740.0},
	{I: 28, J: 20, N: 3.6819392618357e+59},
	{I: 2, J: 22, N: 1.70215539458936e+17},
	{I: 16, J: 22, N: 6.39234909918741e+41},
	{I: 0, J: 24, N: -821698160721956.0},
	{I: 5, J: 24, N: -7.95260241872306e+23},
	{I: 0, J: 28, N: 2.3341586947851e+17},
	{I: 3, J: 28, N: -6.00079934586803e+22},
	{I: 4, J: 28, N: 5.94584382273384e+24},
	{I: 12, J: 28, N: 1.89461279349492e+39},
	{I: 16, J: 28, N: -8.10093428842645e+45},
	{I: 1, J: 32, N: 1.88813911076809e+21},
	{I: 8, J: 32, N: 1.11052244098768e+35},
	{I: 14, J: 32, N: 2.91133958602503e+45},
	{I: 0, J: 36, N: -3.2942192395146e+21},
	{I: 2, J: 36, N: -1.37570282536696e+25},
	{I: 3, J: 36, N: 1.81508996303902e+27},
	{I: 4, J: 36, N: -3.46865122768353e+29},
	{I: 8, J: 36, N: -2.1196114877426e+37},
	{I: 14, J: 36, N: -1.28617899887675e+48},
	{I: 24, J: 36, N: 4.79817895699239e+64},
}

var table3n = powersum.Table{
	{I: 0, J: -12, N: 2.80967799943151e-39},
	{I: 3, J: -12, N: 6.14869006573609e-31},
	{I: 4, J: -12, N: 5.82238667048942e-28},
	{I: 6, J: -12, N: 3.90628369238462e-23},
	{I: 7, J: -12, N: 8.21445758255119e-21},
	{I: 10, J: -12, N: 4.02137961842776e-15},
	{I: 12, J: -12, N: 6.51718171878301e-13},
	{I: 14, J: -12, N: -2.11773355803058e-08},
	{I: 18, J: -12, N: 0.00264953354380072},
	{I: 0, J: -10, N: -1.35031446451331e-32},
	{I: 3, J: -10, N: -6.07246643970893e-24},
	{I: 5, J: -10, N: -4.02352115234494e-19},
	{I: 6, J: -10, N: -7.44938506925544e-17},
	{I: 8, J: -10, N: 1.89917206526237e-13},
	{I: 12, J: -10, N: 3.64975183508473e-06},
	{I: 0, J: -8, N: 1.77274872361946e-26},
	{I: 3, J: -8, N: -3.34952758812999e-19},
	{I: 7, J: -8, N: -4.21537726098389e-09},
	{I: 12, J: -8, N: -0.0391048167929649},
	{I: 2, J: -6, N: 5.41276911564176e-14},
	{I: 3, J: -6, N: 7.05412100773699e-12},
	{I: 4, J: -6, N: 2.58585887897486e-09},
	{I: 2, J: -5, N: -4.93111362030162e-11},
	{I: 4, J: -5, N: -1.58649699894543e-06},
	{I: 7, J: -5, N: -0.5250374278861},
	{I: 4, J: -4, N: 0.00220019901729615},
	{I: 3, J: -3, N: -0.00643064132636925},
	{I: 5, J: -3, N: 62.9154149015048},
	{I: 6, J: -3, N: 135.147318617061},
	{I: 0, J: -2, N: 2.40560808321713e-07},
	{I: 0, J: -1, N: -0.000890763306701305},
	{I: 3, J: -1, N: -4402.09599407714},
	{I: 1, J: 0, N: -302.807107747776},
	{I: 0, J: 1, N: 1591.58748314599},
	{I: 1, J: 1, N: 232534.272709876},
	{I: 0, J: 2, N: -792681.2071326},
	{I: 1, J: 4, N: -86987136466.2769},
	{I: 0, J: 5, N: 354542769185.671},
	{I: 1, J: 6, N: 400849240129329.0},
}

var table3o = powersum.Table{
	{I: 0, J: -12, N: 1.28746023979718e-35},
	{I: 0, J: -4, N: -7.35234770382342e-12},
	{I: 0, J: -1, N: 0.0028907869214915},
	{I: 2, J: -1, N: 0.244482731907223},
	{I: 3, J: -10, N: 1.41733492030985e-24},
	{I: 4, J: -12, N: -3.54533853059476e-29},
	{I: 4, J: -8, N: -5.94539202901431e-18},
	{I: 4, J: -5, N: -5.85188401782779e-09},
	{I: 4, J: -4, N: 2.01377325411803e-06},
	{I: 4, J: -1, N: 1.38647388209306},
	{I: 5, J: -4, N: -1.73959365084772e-05},
	{I: 5, J: -3, N: 0.00137680878349369},
	{I: 6, J: -8, N: 8.14897605805513e-15},
	{I: 7, J: -12, N: 4.25596631351839e-26},
	{I: 8, J: -10, N: -3.87449113787755e-18},
	{I: 8, J: -8, N: 1.3981474793024e-13},
	{I: 8, J: -4, N: -0.00171849638951521},
	{I: 10, J: -12, N: 6.41890529513296e-22},
	{I: 10, J: -8, N: 1.18960578072018e-11},
	{I: 14, J: -12, N: -1.55282762571611e-18},
	{I: 14, J: -8, N: 2.33907907347507e-08},
	{I: 20, J: -12, N: -1.74093247766213e-13},
	{I: 20, J: -10, N: 3.77682649089149e-09},
	{I: 24, J: -12, N: -5.16720236575302e-11},
}

var table3p = powersum.Table{
	{I: 0, J: -1, N: -9.82825342010366e-05},
	{I: 0, J: 0, N: 1.05145700850612},
	{I: 0, J: 1, N: 116.033094095084},
	{I: 0, J: 2, N: 3246.64750281543},
	{I: 1, J: 1, N: -1235.92348610137},
	{I: 2, J: -1, N: -0.0561403450013495},
	{I: 3, J: -3, N: 8.56677401640869e-08},
	{I: 3, J: 0, N: 236.313425393924},
	{I: 4, J: -2, N: 0.00972503292350109},
	{I: 6, J: -2, N: -1.03001994531927},
	{I: 7, J: -5, N: -1.49653706199162e-09},
	{I: 7, J: -4, N: -2.15743778861592e-05},
	{I: 8, J: -2, N: -8.34452198291445},
	{I: 10, J: -3, N: 0.586602660564988},
	{I: 12, J: -12, N: 3.43480022104968e-26},
	{I: 12, J: -6, N: 8.16256095947021e-06},
	{I: 12, J: -5, N: 0.00294985697916798},
	{I: 14, J: -10, N: 7.11730466276584e-17},
	{I: 14, J: -8, N: 4.00954763806941e-10},
	{I: 14, J: -3, N: 10.7766027032853},
	{I: 16, J: -8, N: -4.09449599138182e-07},
	{I: 18, J: -8, N: -7.29121307758902e-06},
	{I: 20, J: -10, N: 6.77107970938909e-09},
	{I: 22, J: -10, N: 6.02745973022975e-08},
	{I: 24, J: -12, N: -3.82323011855257e-11},
	{I: 24, J: -8, N: 0.00179946628317437},
	{I: 36, J: -12, N: -0.000345042834640005},
}

var table3q = powersum.Table{
	{I: -12, J: 10, N: -82043.384325995},
	{I: -12, J: 12, N: 47327151846.1586},
	{I: -10, J: 6, N: -0.0805950021005413},
	{I: -10, J: 7, N: 32.860002543598},
	{I: -10, J: 8, N: -3566.1702998249},
	{I: -10, J: 10, N: -1729857814.33335},
	{I: -8, J: 8, N: 35176923.2729192},
	{I: -6, J: 6, N: -775489.259985144},
	{I: -5, J: 2, N: 7.10346691966018e-05},
	{I: -5, J: 5, N: 99349.9883820274},
	{I: -4, J: 3, N: -0.64209417190457},
	{I: -4, J: 4, N: -6128.42816820083},
	{I: -3, J: 3, N: 232.808472983776},
	{I: -2, J: 0, N: -1.42808220416837e-05},
	{I: -2, J: 1, N: -0.00643596060678456},
	{I: -2, J: 2, N: -4.28577227475614},
	{I: -2, J: 4, N: 2256.89939161918},
	{I: -1, J: 0, N: 0.0010035565172151},
	{I: -1, J: 1, N: 0.333491455143516},
	{I: -1, J: 2, N: 1.09697576888873},
	{I: 0, J: 0, N: 0.961917379376452},
	{I: 1, J: 0, N: -0.0838165632204598},
	{I: 1, J: 1, N: 2.47795908411492},
	{I: 1, J: 3, N: -3191.14969006533},
}

var table3r = powersum.Table{
	{I: -8, J: 6, N: 0.00144165955660863},
	{I: -8, J: 14, N: -7014385996282.58},
	{I: -3, J: -3, N: -8.30946716459219e-17},
	{I: -3, J: 3, N: 0.261975135368109},
	{I: -3, J: 4, N: 393.097214706245},
	{I: -3, J: 5, N: -10433.4030654021},
	{I: -3, J: 8, N: 490112654.154211},
	{I: 0, J: -1, N: -0.000147104222772069},
	{I: 0, J: 0, N: 1.03602748043408},
	{I: 0, J: 1, N: 3.05308890065089},
	{I: 0, J: 5, N: -3997452.76971264},
	{I: 3, J: -6, N: 5.6923371959375e-12},
	{I: 3, J: -2, N: -0.0464923504407778},
	{I: 8, J: -12, N: -5.35400396512906e-18},
	{I: 8, J: -10, N: 3.99988795693162e-13},
	{I: 8, J: -8, N: -5.36479560201811e-07},
	{I: 8, J: -5, N: 0.0159536722411202},
	{I: 10, J: -12, N: 2.70303248860217e-15},
	{I: 10, J: -10, N: 2.44247453858506e-08},
	{I: 10, J: -8, N: -9.83430636716454e-06},
	{I: 10, J: -6, N: 0.0663513144224454},
	{I: 10, J: -5, N: -9.93456957845006},
	{I: 10, J: -4, N: 546.491323528491},
	{I: 10, J: -3, N: -14336.5406393758},
	{I: 10, J: -2, N: 150764.974125511},
	{I: 12, J: -12, N: -3.37209709340105e-10},
	{I: 14, J: -12, N: 3.77501980025469e-09},
}

var table3s = powersum.Table{
	{I: -12, J: 20, N: -5.32466612140254e+22},
	{I: -12, J: 24, N: 1.00415480000824e+31},
	{I: -10, J: 22, N: -1.91540001821367e+29},
	{I: -8, J: 14, N: 1.05618377808847e+16},
	{I: -6, J: 36, N: 2.02281884477061e+58},
	{I: -5, J: 8, N: 88458547.2596134},
	{I: -5, J: 16, N: 1.66540181638363e+22},
	{I: -4, J: 6, N: -313563.197669111},
	{I: -4, J: 32, N: -1.85662327545324e+53},
	{I: -3, J: 3, N: -0.0624942093918942},
	{I: -3, J: 8, N: -5041607241.3259},
	{I: -2, J: 4, N: 18751.4491833092},
	{I: -1, J: 1, N: 0.00121399979993217},
	{I: -1, J: 2, N: 1.88317043049455},
	{I: -1, J: 3, N: -1670.7350396206},
	{I: 0, J: 0, N: 0.965961650599775},
	{I: 0, J: 1, N: 2.94885696802488},
	{I: 0, J: 4, N: -65391.5627346115},
	{I: 0, J: 28, N: 6.04012200163444e+49},
	{I: 1, J: 0, N: -0.198339358557937},
	{I: 1, J: 32, N: -1.75984090163501e+57},
	{I: 3, J: 0, N: 3.56314881403987},
	{I: 3, J: 1, N: -575.991255144384},
	{I: 3, J: 2, N: 45621.3415338071},
	{I: 4, J: 3, N: -10917404.4987829},
	{I: 4, J: 18, N: 4.37796099975134e+33},
	{I: 4, J: 24, N: -6.16552611135792e+45},
	{I: 5, J: 4, N: 1935687689.17797},
	{I: 14, J: 24, N: 9.50898170425042e+53},
}

var table3t = powersum.Table{
	{I: 0, J: 0, N: 1.55287249586268},
	{I: 0, J: 1, N: 6.64235115009031},
	{I: 0, J: 4, N: -2893.6623672721},
	{I: 0, J: 12, N: -3859232023098.48},
	{I: 1, J: 0, N: -2.91002915783761},
	{I: 1, J: 10, N: -829088246858.083},
	{I: 2, J: 0, N: 1.76814899675218},
	{I: 2, J: 6, N: -534686695.713469},
	{I: 2, J: 14, N: 1.60464608687834e+17},
	{I: 3, J: 3, N: 196435.366560186},
	{I: 3, J: 8, N: 1566374275417.29},
	{I: 4, J: 0, N: -1.78154560260006},
	{I: 4, J: 10, N: -2297462376236920.0},
	{I: 7, J: 3, N: 38565900.1648006},
	{I: 7, J: 4, N: 1105544467.90543},
	{I: 7, J: 7, N: -67707383068734.9},
	{I: 7, J: 20, N: -3.27910592086523e+30},
	{I: 7, J: 36, N: -3.41552040860644e+50},
	{I: 10, J: 10, N: -5.27251339709047e+20},
	{I: 10, J: 12, N: 2.45375640937055e+23},
	{I: 10, J: 14, N: -1.68776617209269e+26},
	{I: 10, J: 16, N: 3.58958955867578e+28},
	{I: 10, J: 22, N: -6.56475280339411e+35},
	{I: 18, J: 18, N: 3.55286045512301e+38},
	{I: 20, J: 32, N: 5.6902145441327e+57},
	{I: 22, J: 22, N: -7.00584546433113e+47},
	{I: 22, J: 36, N: -7.05772623326374e+64},
	{I: 24, J: 24, N: 1.66861176200148e+52},
	{I: 28, J: 28, N: -3.00475129680486e+60},
	{I: 32, J: 22, N: -6.68481295196808e+50},
	{I: 32, J: 32, N: 4.28432338620678e+68},
	{I: 32, J: 36, N: -4.44227367758304e+71},
	{I: 36, J: 36, N: -2.81396013562745e+76},
}

var table3u = powersum.Table{
	{I: -12, J: 14, N: 1.22088349258355e+17},
	{I: -10, J: 10, N: 1042164686.08488},
	{I: -10, J: 12, N: -8826669315646520.0},
	{I: -10, J: 14, N: 2.59929510849499e+19},
	{I: -8, J: 10, N: 222612779142211.0},
	{I: -8, J: 12, N: -8.78473585050085e+17},
	{I: -8, J: 14, N: -3.14432577551552e+21},
	{I: -6, J: 8, N: -2169349169962.85},
	{I: -6, J: 12, N: 1.59079648196849e+20},
	{I: -5, J: 4, N: -339.567617303423},
	{I: -5, J: 8, N: 8843876513378.36},
	{I: -5, J: 12, N: -8.43405926846418e+20},
	{I: -3, J: 2, N: 11.4178193518022},
	{I: -1, J: -1, N: -0.000122708229235641},
	{I: -1, J: 1, N: -106.201671767107},
	{I: -1, J: 12, N: 9.03443213959313e+24},
	{I: -1, J: 14, N: -6.93996270370852e+27},
	{I: 0, J: -3, N: 6.48916718965575e-09},
	{I: 0, J: 1, N: 7189.57567127851},
	{I: 1, J: -2, N: 0.00105581745346187},
	{I: 2, J: 5, N: -651903203602581.0},
	{I: 2, J: 10, N: -1.60116813274676e+24},
	{I: 3, J: -5, N: -5.10254294237837e-09},
	{I: 5, J: -4, N: -0.152355388953402},
	{I: 5, J: 2, N: 677143292290.144},
	{I: 5, J: 3, N: 276378438378930.0},
	{I: 6, J: -5, N: 0.0116862983141686},
	{I: 6, J: 2, N: -30142694798017.1},
	{I: 8, J: -8, N: 1.6971981388484e-08},
	{I: 8, J: 8, N: 1.04674840020929e+26},
	{I: 10, J: -4, N: -10801.690456014},
	{I: 12, J: -12, N: -9.90623601934295e-13},
	{I: 12, J: -4, N: 5361164.83602738},
	{I: 12, J: 4, N: 2.26145963747881e+21},
	{I: 14, J: -12, N: -4.8873156577621e-10},
	{I: 14, J: -10, N: 1.5100154888067e-05},
	{I: 14, J: -6, N: -22770.046464392},
	{I: 14, J: 6, N: -7.81754507698846e+27},
}

var table3v = powersum.Table{
	{I: -10, J: -8, N: -4.15652812061591e-55},
	{I: -8, J: -12, N: 1.77441742924043e-61},
	{I: -6, J: -12, N: -3.57078668203377e-55},
	{I: -6, J: -3, N: 3.59252213604114e-26},
	{I: -6, J: 5, N: -25.9123736380269},
	{I: -6, J: 6, N: 59461.976619346},
	{I: -6, J: 8, N: -62418400710.3158},
	{I: -6, J: 10, N: 3.13080299915944e+16},
	{I: -5, J: 1, N: 1.05006446192036e-09},
	{I: -5, J: 2, N: -1.92824336984852e-06},
	{I: -5, J: 6, N: 654144.373749937},
	{I: -5, J: 8, N: 5131174628650.44},
	{I: -5, J: 10, N: -6.97595750347391e+18},
	{I: -5, J: 14, N: -1.03977184454767e+28},
	{I: -4, J: -12, N: 1.19563135540666e-48},
	{I: -4, J: -10, N: -4.36677034051655e-42},
	{I: -4, J: -6, N: 9.26990036530639e-30},
	{I: -4, J: 10, N: 5.87793105620748e+20},
	{I: -3, J: -3, N: 2.80375725094731e-18},
	{I: -3, J: 10, N: -1.92359972440634e+22},
	{I: -3, J: 12, N: 7.42705723302738e+26},
	{I: -2, J: 2, N: -51.7429682450605},
	{I: -2, J: 4, N: 8206120.48645469},
	{I: -1, J: -2, N: -1.88214882341448e-09},
	{I: -1, J: 0, N: 0.0184587261114837},
	{I: 0, J: -2, N: -1.35830407782663e-06},
	{I: 0, J: 6, N: -7.23681885626348e+16},
	{I: 0, J: 10, N: -2.23449194054124e+26},
	{I: 1, J: -12, N: -1.11526741826431e-35},
	{I: 1, J: -10, N: 2.76032601145151e-29},
	{I: 3, J: 3, N: 134856491567853.0},
	{I: 4, J: -6, N: 6.5244029334586e-10},
	{I: 4, J: 3, N: 5.1065511977436e+16},
	{I: 4, J: 10, N: -4.68138358908732e+31},
	{I: 5, J: 2, N: -7606674911832790.0},
	{I: 8, J: -12, N: -4.17247986986821e-19},
	{I: 10, J: -2, N: 31254567775610.4},
	{I: 12, J: -3, N: -100375333864186.0},
	{I: 14, J: 1, N: 2.47761392329058e+26},
}

var table3w = powersum.Table{
	{I: -12, J: 8, N: -5.86219133817016e-08},
	{I: -12, J: 14, N: -89446035500.5526},
	{I: -10, J: -1, N: 5.31168037519774e-31},
	{I: -10, J: 8, N: 0.109892402329239},
	{I: -8, J: 6, N: -0.0575368389425212},
	{I: -8, J: 8, N: 22827.6853990249},
	{I: -8, J: 14, N: -1.58548609655002e+18},
	{I: -6, J: -4, N: 3.29865748576503e-28},
	{I: -6, J: -3, N: -6.34987981190669e-25},
	{I: -6, J: 2, N: 6.15762068640611e-09},
	{I: -6, J: 8, N: -96110924.0985747},
	{I: -5, J: -10, N: -4.06274286652625e-45},
	{I: -4, J: -1, N: -4.71103725498077e-13},
	{I: -4, J: 3, N: 0.725937724828145},
	{I: -3, J: -10, N: 1.87768525763682e-39},
	{I: -3, J: 3, N: -1033.08436323771},
	{I: -2, J: 1, N: -0.0662552816342168},
	{I: -2, J: 2, N: 579.51404176571},
	{I: -1, J: -8, N: 2.37416732616644e-27},
	{I: -1, J: -4, N: 2.71700235739893e-15},
	{I: -1, J: 1, N: -90.78862134836},
	{I: 0, J: -12, N: -1.71242509570207e-37},
	{I: 0, J: 1, N: 156.792067854621},
	{I: 1, J: -1, N: 0.92326135790147},
	{I: 2, J: -1, N: -5.97865988422577},
	{I: 2, J: 2, N: 3219887.67636389},
	{I: 3, J: -12, N: -3.99441390042203e-30},
	{I: 3, J: -5, N: 4.93429086046981e-08},
	{I: 5, J: -10, N: 8.12036983370565e-20},
	{I: 5, J: -8, N: -2.07610284654137e-12},
	{I: 5, J: -6, N: -3.40821291419719e-07},
	{I: 8, J: -12, N: 5.42000573372233e-18},
	{I: 8, J: -10, N: -8.56711586510214e-13},
	{I: 10, J: -12, N: 2.66170454405981e-14},
	{I: 10, J: -8, N: 8.58133791857099e-06},
}

var table3x = powersum.Table{
	{I: -8, J: 14, N: 3.77373741298151e+18},
	{I: -6, J: 10, N: -5071008837229.13},
	{I: -5, J: 10, N: -1033632255988600.0},
	{I: -4, J: 1, N: 1.84790814320773e-06},
	{I: -4, J: 2, N: -0.000924729378390945},
	{I: -4, J: 14, N: -4.25999562292738e+23},
	{I: -3, J: -2, N: -4.62307771873973e-13},
	{I: -3, J: 12, N: 1.07319065855767e+21},
	{I: -1, J: 5, N: 64866249228.0682},
	{I: 0, J: 0, N: 2.44200600688281},
	{I: 0, J: 4, N: -8515357334.84258},
	{I: 0, J: 10, N: 1.69894481433592e+21},
	{I: 1, J: -10, N: 2.1578022250902e-27},
	{I: 1, J: -1, N: -0.320850551367334},
	{I: 2, J: 6, N: -3.8264244845861e+16},
	{I: 3, J: -12, N: -2.75386077674421e-29},
	{I: 3, J: 0, N: -563199.253391666},
	{I: 3, J: 8, N: -3.26068646279314e+20},
	{I: 4, J: 3, N: 39794900155318.4},
	{I: 5, J: -6, N: 1.00824008584757e-07},
	{I: 5, J: -2, N: 16223.4569738433},
	{I: 5, J: 1, N: -43235522531.9745},
	{I: 6, J: 1, N: -592874245598.61},
	{I: 8, J: -6, N: 1.33061647281106},
	{I: 8, J: -3, N: 1573381.97797544},
	{I: 8, J: 1, N: 25818961427085.3},
	{I: 8, J: 8, N: 2.62413209706358e+24},
	{I: 10, J: -8, N: -0.0920011937431142},
	{I: 12, J: -10, N: 0.00220213765905426},
	{I: 12, J: -8, N: -11.0433759109547},
	{I: 12, J: -5, N: 8470048.70612087},
	{I: 12, J: -4, N: -592910695.762536},
	{I: 14, J: -12, N: -1.8302717326966e-05},
	{I: 14, J: -10, N: 0.181339603516302},
	{I: 14, J: -8, N: -1192.28759669889},
	{I: 14, J: -6, N: 4308676.58061468},
}

var table3y = powersum.Table{
	{I: 0, J: -3, N: -5.25597995024633e-10},
	{I: 0, J: 1, N: 5834.41305228407},
	{I: 0, J: 5, N: -1.34778968457925e+16},
	{I: 0, J: 8, N: 1.18973500934212e+25},
	{I: 1, J: 8, N: -1.59096490904708e+26},
	{I: 2, J: -4, N: -3.15839902302021e-07},
	{I: 2, J: -1, N: 496.212197158239},
	{I: 2, J: 4, N: 3.27777227273171e+18},
	{I: 2, J: 5, N: -5.27114657850696e+21},
	{I: 3, J: -8, N: 2.10017506281863e-17},
	{I: 3, J: 4, N: 7.05106224399834e+20},
	{I: 3, J: 8, N: -2.66713136106469e+30},
	{I: 4, J: -6, N: -1.45370512554562e-08},
	{I: 4, J: 6, N: 1.4933391705313e+27},
	{I: 5, J: -2, N: -14979562.0287641},
	{I: 5, J: 1, N: -3818819062711000.0},
	{I: 8, J: -8, N: 7.24660165585797e-05},
	{I: 8, J: -2, N: -93780816955019.3},
	{I: 10, J: -5, N: 5144114683.76383},
	{I: 12, J: -8, N: -82819.8594040141},
}

var table3z = powersum.Table{
	{I: -8, J: 3, N: 2.4400789229065e-11},
	{I: -6, J: 6, N: -4630574.30331242},
	{I: -5, J: 6, N: 7288032747.77712},
	{I: -5, J: 8, N: 3277763028588560.0},
	{I: -4, J: 5, N: -1105981701.18409},
	{I: -4, J: 6, N: -3238999157299.57},
	{I: -4, J: 8, N: 9238140070232450.0},
	{I: -3, J: -2, N: 8.42250080413712e-13},
	{I: -3, J: 5, N: 663221436245.506},
	{I: -3, J: 6, N: -167170186672139.0},
	{I: -2, J: 2, N: 2537.49358701391},
	{I: -1, J: -6, N: -8.19731559610523e-21},
	{I: 0, J: 3, N: 328380587890.663},
	{I: 1, J: 1, N: -62500479.1171543},
	{I: 2, J: 6, N: 8.03197957462023e+20},
	{I: 3, J: -6, N: -2.04397011338353e-11},
	{I: 3, J: -2, N: -3783.91047055938},
	{I: 6, J: -6, N: 0.0097287654593862},
	{I: 6, J: -5, N: 15.4355721681459},
	{I: 6, J: -4, N: -3739.62862928643},
	{I: 6, J: -1, N: -68285901137.4572},
	{I: 8, J: -8, N: -0.000248488015614543},
	{I: 8, J: -4, N: 3945360.49497068},
}
