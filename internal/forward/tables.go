package forward

import "github.com/alexiusacademia/gosteam/internal/powersum"

// region1 holds the coefficients of the Gibbs free energy of region 1
// (IAPWS-IF97 Table 2).
var region1 = powersum.Table{
	{I: 0, J: -2, N: 0.14632971213167},
	{I: 0, J: -1, N: -0.84548187169114},
	{I: 0, J: 0, N: -3.756360367204},
	{I: 0, J: 1, N: 3.3855169168385},
	{I: 0, J: 2, N: -0.95791963387872},
	{I: 0, J: 3, N: 0.15772038513228},
	{I: 0, J: 4, N: -0.016616417199501},
	{I: 0, J: 5, N: 0.00081214629983568},
	{I: 1, J: -9, N: 0.00028319080123804},
	{I: 1, J: -7, N: -0.00060706301565874},
	{I: 1, J: -1, N: -0.018990068218419},
	{I: 1, J: 0, N: -0.032529748770505},
	{I: 1, J: 1, N: -0.021841717175414},
	{I: 1, J: 3, N: -5.283835796993e-05},
	{I: 2, J: -3, N: -0.00047184321073267},
	{I: 2, J: 0, N: -0.00030001780793026},
	{I: 2, J: 1, N: 4.7661393906987e-05},
	{I: 2, J: 3, N: -4.4141845330846e-06},
	{I: 2, J: 17, N: -7.2694996297594e-16},
	{I: 3, J: -4, N: -3.1679644845054e-05},
	{I: 3, J: 0, N: -2.8270797985312e-06},
	{I: 3, J: 6, N: -8.5205128120103e-10},
	{I: 4, J: -5, N: -2.2425281908e-06},
	{I: 4, J: -2, N: -6.5171222895601e-07},
	{I: 4, J: 10, N: -1.4341729937924e-13},
	{I: 5, J: -8, N: -4.0516996860117e-07},
	{I: 8, J: -11, N: -1.2734301741641e-09},
	{I: 8, J: -6, N: -1.7424871230634e-10},
	{I: 21, J: -29, N: -6.8762131295531e-19},
	{I: 23, J: -31, N: 1.4478307828521e-20},
	{I: 29, J: -38, N: 2.6335781662795e-23},
	{I: 30, J: -39, N: -1.1947622640071e-23},
	{I: 31, J: -40, N: 1.8228094581404e-24},
	{I: 32, J: -41, N: -9.3537087292458e-26},
}

// region2Ideal is the ideal-gas part of region 2 (Table 10). The ln π
// term is added separately.
var region2Ideal = powersum.Table{
	{I: 0, J: 0, N: -9.6927686500217},
	{I: 0, J: 1, N: 10.086655968018},
	{I: 0, J: -5, N: -0.005608791128302},
	{I: 0, J: -4, N: 0.071452738081455},
	{I: 0, J: -3, N: -0.40710498223928},
	{I: 0, J: -2, N: 1.4240819171444},
	{I: 0, J: -1, N: -4.383951131945},
	{I: 0, J: 2, N: -0.28408632460772},
	{I: 0, J: 3, N: 0.021268463753307},
}

// region2Residual is the residual part of region 2 (Table 11).
var region2Residual = powersum.Table{
	{I: 1, J: 0, N: -0.0017731742473213},
	{I: 1, J: 1, N: -0.017834862292358},
	{I: 1, J: 2, N: -0.045996013696365},
	{I: 1, J: 3, N: -0.057581259083432},
	{I: 1, J: 6, N: -0.05032527872793},
	{I: 2, J: 1, N: -3.3032641670203e-05},
	{I: 2, J: 2, N: -0.00018948987516315},
	{I: 2, J: 4, N: -0.0039392777243355},
	{I: 2, J: 7, N: -0.043797295650573},
	{I: 2, J: 36, N: -2.6674547914087e-05},
	{I: 3, J: 0, N: 2.0481737692309e-08},
	{I: 3, J: 1, N: 4.3870667284435e-07},
	{I: 3, J: 3, N: -3.227767723857e-05},
	{I: 3, J: 6, N: -0.0015033924542148},
	{I: 3, J: 35, N: -0.040668253562649},
	{I: 4, J: 1, N: -7.8847309559367e-10},
	{I: 4, J: 2, N: 1.2790717852285e-08},
	{I: 4, J: 3, N: 4.8225372718507e-07},
	{I: 5, J: 7, N: 2.2922076337661e-06},
	{I: 6, J: 3, N: -1.6714766451061e-11},
	{I: 6, J: 16, N: -0.0021171472321355},
	{I: 6, J: 35, N: -23.895741934104},
	{I: 7, J: 0, N: -5.905956432427e-18},
	{I: 7, J: 11, N: -1.2621808899101e-06},
	{I: 7, J: 25, N: -0.038946842435739},
	{I: 8, J: 8, N: 1.1256211360459e-11},
	{I: 8, J: 36, N: -8.2311340897998},
	{I: 9, J: 13, N: 1.9809712802088e-08},
	{I: 10, J: 4, N: 1.0406965210174e-19},
	{I: 10, J: 10, N: -1.0234747095929e-13},
	{I: 10, J: 14, N: -1.0018179379511e-09},
	{I: 16, J: 29, N: -8.0882908646985e-11},
	{I: 16, J: 50, N: 0.10693031879409},
	{I: 18, J: 57, N: -0.33662250574171},
	{I: 20, J: 20, N: 8.9185845355421e-25},
	{I: 20, J: 35, N: 3.0629316876232e-13},
	{I: 20, J: 48, N: -4.2002467698208e-06},
	{I: 21, J: 21, N: -5.9056029685639e-26},
	{I: 22, J: 53, N: 3.7826947613457e-06},
	{I: 23, J: 39, N: -1.2768608934681e-15},
	{I: 24, J: 26, N: 7.3087610595061e-29},
	{I: 24, J: 40, N: 5.5414715350778e-17},
	{I: 24, J: 58, N: -9.436970724121e-07},
}

// region3Log is n1, the coefficient of the ln δ term of region 3 (Table 30).
const region3Log = 1.0658070028513

// region3 holds terms 2 to 40 of the Helmholtz free energy of region 3.
var region3 = powersum.Table{
	{I: 0, J: 0, N: -15.732845290239},
	{I: 0, J: 1, N: 20.944396974307},
	{I: 0, J: 2, N: -7.6867707878716},
	{I: 0, J: 7, N: 2.6185947787954},
	{I: 0, J: 10, N: -2.808078114862},
	{I: 0, J: 12, N: 1.2053369696517},
	{I: 0, J: 23, N: -0.0084566812812502},
	{I: 1, J: 2, N: -1.2654315477714},
	{I: 1, J: 6, N: -1.1524407806681},
	{I: 1, J: 15, N: 0.88521043984318},
	{I: 1, J: 17, N: -0.64207765181607},
	{I: 2, J: 0, N: 0.38493460186671},
	{I: 2, J: 2, N: -0.85214708824206},
	{I: 2, J: 6, N: 4.8972281541877},
	{I: 2, J: 7, N: -3.0502617256965},
	{I: 2, J: 22, N: 0.039420536879154},
	{I: 2, J: 26, N: 0.12558408424308},
	{I: 3, J: 0, N: -0.2799932969871},
	{I: 3, J: 2, N: 1.389979956946},
	{I: 3, J: 4, N: -2.018991502357},
	{I: 3, J: 16, N: -0.0082147637173963},
	{I: 3, J: 26, N: -0.47596035734923},
	{I: 4, J: 0, N: 0.0439840744735},
	{I: 4, J: 2, N: -0.44476435428739},
	{I: 4, J: 4, N: 0.90572070719733},
	{I: 4, J: 26, N: 0.70522450087967},
	{I: 5, J: 1, N: 0.10770512626332},
	{I: 5, J: 3, N: -0.32913623258954},
	{I: 5, J: 26, N: -0.50871062041158},
	{I: 6, J: 0, N: -0.022175400873096},
	{I: 6, J: 2, N: 0.094260751665092},
	{I: 6, J: 26, N: 0.16436278447961},
	{I: 7, J: 2, N: -0.013503372241348},
	{I: 8, J: 26, N: -0.014834345352472},
	{I: 9, J: 2, N: 0.00057922953628084},
	{I: 9, J: 26, N: 0.0032308904703711},
	{I: 10, J: 0, N: 8.0964802996215e-05},
	{I: 10, J: 1, N: -0.00016557679795037},
	{I: 11, J: 26, N: -4.4923899061994e-05},
}

// region5Ideal is the ideal-gas part of region 5 (Table 37).
var region5Ideal = powersum.Table{
	{I: 0, J: 0, N: -13.179983674201},
	{I: 0, J: 1, N: 6.8540841634434},
	{I: 0, J: -3, N: -0.024805148933466},
	{I: 0, J: -2, N: 0.36901534980333},
	{I: 0, J: -1, N: -3.1161318213925},
	{I: 0, J: 2, N: -0.32961626538917},
}

// region5Residual is the residual part of region 5 (Table 38).
var region5Residual = powersum.Table{
	{I: 1, J: 1, N: 0.0015736404855259},
	{I: 1, J: 2, N: 0.00090153761673944},
	{I: 1, J: 3, N: -0.0050270077677648},
	{I: 2, J: 3, N: 2.2440037409485e-06},
	{I: 2, J: 9, N: -4.1163275453471e-06},
	{I: 3, J: 7, N: 3.7919454822955e-08},
}

// region1TPH is the backward equation T(p,h) of region 1 (Table 6).
var region1TPH = powersum.Table{
	{I: 0, J: 0, N: -238.72489924521},
	{I: 0, J: 1, N: 404.21188637945},
	{I: 0, J: 2, N: 113.49746881718},
	{I: 0, J: 6, N: -5.8457616048039},
	{I: 0, J: 22, N: -0.0001528548241314},
	{I: 0, J: 32, N: -1.0866707695377e-06},
	{I: 1, J: 0, N: -13.391744872602},
	{I: 1, J: 1, N: 43.211039183559},
	{I: 1, J: 2, N: -54.010067170506},
	{I: 1, J: 3, N: 30.535892203916},
	{I: 1, J: 4, N: -6.5964749423638},
	{I: 1, J: 10, N: 0.0093965400878363},
	{I: 1, J: 32, N: 1.157364750534e-07},
	{I: 2, J: 10, N: -2.5858641282073e-05},
	{I: 2, J: 32, N: -4.0644363084799e-09},
	{I: 3, J: 10, N: 6.6456186191635e-08},
	{I: 3, J: 32, N: 8.0670734103027e-11},
	{I: 4, J: 32, N: -9.3477771213947e-13},
	{I: 5, J: 32, N: 5.8265442020601e-15},
	{I: 6, J: 32, N: -1.5020185953503e-17},
}
