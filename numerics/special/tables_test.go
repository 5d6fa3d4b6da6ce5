package special

import "math"

var negZero = math.Copysign(0, -1)

// atanhCases are (input, CPython cmath.atanh(input)) pairs covering
// subnormal to near-overflow components and both sides of each cut.
var atanhCases = []struct {
	re, im         float64
	wantRe, wantIm float64
}{
	{-1e-323, 0, -1e-323, 0},
	{-1e-323, negZero, -1e-323, negZero},
	{-1e-305, 0, -1e-305, 0},
	{-1e-305, negZero, -1e-305, negZero},
	{-1e-150, 0, -1e-150, 0},
	{-1e-150, negZero, -1e-150, negZero},
	{-1e-16, 0, -1e-16, 0},
	{-1e-16, negZero, -1e-16, negZero},
	{-0.001, 0, -0.0010000003333335333, 0},
	{-0.001, negZero, -0.0010000003333335333, negZero},
	{-0.579, 0, -0.6609570902866303, 0},
	{-0.579, negZero, -0.6609570902866303, negZero},
	{-0.9999999999999999, 0, -18.714973875118524, 0},
	{-0.9999999999999999, negZero, -18.714973875118524, negZero},
	{-1.0000000000000002, 0, -18.36840028483855, 1.5707963267948966},
	{-1.0000000000000002, negZero, -18.36840028483855, -1.5707963267948966},
	{-1.001, 0, -3.8007011672919218, 1.5707963267948966},
	{-1.001, negZero, -3.8007011672919218, -1.5707963267948966},
	{-2.0, 0, -0.5493061443340549, 1.5707963267948966},
	{-2.0, negZero, -0.5493061443340549, -1.5707963267948966},
	{-23.0, 0, -0.043505688494814884, 1.5707963267948966},
	{-23.0, negZero, -0.043505688494814884, -1.5707963267948966},
	{-1e+16, 0, -9.999999999999997e-17, 1.5707963267948966},
	{-1e+16, negZero, -9.999999999999997e-17, -1.5707963267948966},
	{-1e+150, 0, -1.0000000000000001e-150, 1.5707963267948966},
	{-1e+150, negZero, -1.0000000000000001e-150, -1.5707963267948966},
	{-1e+299, 0, -1e-299, 1.5707963267948966},
	{-1e+299, negZero, -1e-299, -1.5707963267948966},
	{1e-323, 0, 1e-323, 0},
	{1e-323, negZero, 1e-323, negZero},
	{1e-305, 0, 1e-305, 0},
	{1e-305, negZero, 1e-305, negZero},
	{1e-150, 0, 1e-150, 0},
	{1e-150, negZero, 1e-150, negZero},
	{1e-16, 0, 1e-16, 0},
	{1e-16, negZero, 1e-16, negZero},
	{0.001, 0, 0.0010000003333335333, 0},
	{0.001, negZero, 0.0010000003333335333, negZero},
	{0.579, 0, 0.6609570902866303, 0},
	{0.579, negZero, 0.6609570902866303, negZero},
	{0.9999999999999999, 0, 18.714973875118524, 0},
	{0.9999999999999999, negZero, 18.714973875118524, negZero},
	{1.0000000000000002, 0, 18.36840028483855, 1.5707963267948966},
	{1.0000000000000002, negZero, 18.36840028483855, -1.5707963267948966},
	{1.001, 0, 3.8007011672919218, 1.5707963267948966},
	{1.001, negZero, 3.8007011672919218, -1.5707963267948966},
	{2.0, 0, 0.5493061443340549, 1.5707963267948966},
	{2.0, negZero, 0.5493061443340549, -1.5707963267948966},
	{23.0, 0, 0.043505688494814884, 1.5707963267948966},
	{23.0, negZero, 0.043505688494814884, -1.5707963267948966},
	{1e+16, 0, 9.999999999999997e-17, 1.5707963267948966},
	{1e+16, negZero, 9.999999999999997e-17, -1.5707963267948966},
	{1e+150, 0, 1.0000000000000001e-150, 1.5707963267948966},
	{1e+150, negZero, 1.0000000000000001e-150, -1.5707963267948966},
	{1e+299, 0, 1e-299, 1.5707963267948966},
	{1e+299, negZero, 1e-299, -1.5707963267948966},
	{-0.544609259806335, -0.5403805012672103, -0.41984265808446974, -0.6035415393835283},
	{-1.6934614269829051, -0.4880738610811362, -0.5859276910224328, -1.3537837470975898},
	{-1.3467293985501207, -0.47868354895395876, -0.6996162437070998, -1.1994450156570076},
	{-5.614223241898489, -544551613.393077, -1.8932657550925747e-17, -1.5707963249585235},
	{-0.01184146038126365, -3.259978899823385, -0.0010183936547405188, -1.2731614020743838},
	{-0.007334573695002953, 0.3582194967092225, -0.006500486902468247, 0.34399359971920895},
	{-13.866782244320014, 0.9541129545860273, -0.0718968520550589, 1.5658322704631409},
	{-708.5996498278078, 21.984802159266675, -0.0014098779074189739, 1.5707525842838959},
	{-30.9168320760306, 1.3691897138829843, -0.03229268204574368, 1.5693652094847115},
	{-0.5746180633986175, 0.29534797443913063, -0.5646746447248276, 0.39615612824172625},
	{0.40089246737415685, -1.632285984300659, 0.1063832707890608, -1.0402821335326482},
	{2119.6167688262176, -1.538365343737724e+17, 8.956500851838205e-32, -1.5707963267948966},
	{756.8601785094164, -6.606408713322382, 0.0013211481136820044, -1.5707847948702234},
	{4.04906177180416, -2.5784456791040652e-12, 0.2521842553855362, -1.5707963267947291},
	{10.589254957173523, -0.13956391149624509, 0.09470089028219766, -1.5695407140217623},
	{1.01711875531605, 0.7076611346535402, 0.5526025197536779, 0.9661971111664168},
	{0.03164550252775085, 0.0673199837265444, 0.03151301834408674, 0.06728543767054902},
	{0.13670177624994517, 0.4324008936185795, 0.11538933151017253, 0.4139200814533621},
	{0.6417389924359669, 2.9008577686695256, 0.0656801424241344, 1.251853572405392},
	{0.19313813528025942, 38.79961915074187, 0.00012820765917366647, 1.5450292202823612},
	{5.324264683134795e+307, 1.3740396080084153e+308, 2.45192536166956e-309, 1.5707963267948966},
	{1.158701641241358e+308, -6.557926887337585e+307, 6.53653752677951e-309, -1.5707963267948966},
	{-1.3435325735762247e+308, 9.894736925960155e+307, -4.825668090658996e-309, 1.5707963267948966},
	{-1.4359857522598942e+308, -9.4701204702391e+307, -4.853128226287265e-309, -1.5707963267948966},
	{0, 5.66141810680985e+307, 0, 1.5707963267948966},
	{negZero, 6.981321272145014e+307, negZero, 1.5707963267948966},
	{0, -7.497061306031145e+307, 0, -1.5707963267948966},
	{negZero, -1.5280601880314068e+308, negZero, -1.5707963267948966},
	{8.221947233600075e+307, 0, 1.2162568933954813e-308, 1.5707963267948966},
	{1.48115196172809e+308, negZero, 6.751501708395133e-309, -1.5707963267948966},
	{-1.2282016263598785e+308, 0, -8.14198563605376e-309, 1.5707963267948966},
	{-1.0616427760154426e+308, negZero, -9.419364239948956e-309, -1.5707963267948966},
	{1.2971536510180682e+308, 5.284794845233329, 7.709186951099833e-309, 1.5707963267948966},
	{1.184986097741185e+308, -7.978190644745995, 8.4389175696339e-309, -1.5707963267948966},
	{-1.4029969422586635e+308, 0.9389198654366337, -7.127599283218073e-309, 1.5707963267948966},
	{-4.750809891224821e+307, -8.27024212470399, -2.1049042645278043e-308, -1.5707963267948966},
	{8.268074211577, 8.115389841091806e+307, 0, 1.5707963267948966},
	{1.2575325146218885, -1.474667914766165e+308, 0, -1.5707963267948966},
	{-2.46188036823109, 1.3781522717005568e+308, negZero, 1.5707963267948966},
	{-4.095238669478811, -1.231083376353703e+308, negZero, -1.5707963267948966},
	{3.801756366e-314, 2.663548423907e-312, 3.801756366e-314, 2.663548423907e-312},
	{1.74e-321, -4.35478006725e-313, 1.74e-321, -4.35478006725e-313},
	{-5.9656816e-317, 9.96922535554e-313, -5.9656816e-317, 9.96922535554e-313},
	{-6.56066711784e-313, -2.168093640635733e-309, -6.56066711784e-313, -2.168093640635733e-309},
	{0, 2.5231e-319, 0, 2.5231e-319},
	{negZero, 5.6067e-320, negZero, 5.6067e-320},
	{0, -2.4222487e-317, 0, -2.4222487e-317},
	{negZero, -3.0861101e-316, negZero, -3.0861101e-316},
	{3.1219222884394e-310, 0, 3.1219222884394e-310, 0},
	{9.89263375649762e-309, negZero, 9.89263375649762e-309, negZero},
	{-1.54625350929e-312, 0, -1.54625350929e-312, 0},
	{-1e-323, negZero, -1e-323, negZero},
	{1.0, 1e-153, 176.49433320432448, 0.7853981633974483},
	{1.0, 1e-154, 177.6456257508215, 0.7853981633974483},
	{-1.0, 1e-161, -185.70467357630065, 0.7853981633974483},
	{1.0, -1e-165, 190.30984376228875, -0.7853981633974483},
	{-1.0, -1e-323, -372.2200359606906, -0.7853981633974483},
}

// acosCases are (input, CPython cmath.acos(input)) pairs away from the
// real-axis cuts, where both conventions agree.
var acosCases = []struct {
	re, im         float64
	wantRe, wantIm float64
}{
	{0.5, 0, 1.0471975511965979, negZero},
	{-0.5, negZero, 2.0943951023931953, 0},
	{0, 0, 1.5707963267948966, negZero},
	{1e-300, 1e-300, 1.5707963267948966, -1e-300},
	{5e-324, 0, 1.5707963267948966, negZero},
	{-5e-324, -5e-324, 1.5707963267948966, 0},
	{0.5, 0.5, 1.1185178796437059, -0.5306375309525178},
	{-0.7, 1.3, 1.9855489338686876, -1.1497994455842555},
	{2.0, 3.0, 1.0001435424737972, -1.9833870299165355},
	{-3.0, -4.0, 2.2047801924340735, 2.305509031243477},
	{0.3, -2.0, 1.4371941862512996, 1.4516490266745097},
	{1.0, 1e-20, 9.999999999999999e-11, -1e-10},
	{-1.0, -1e-20, 3.141592653489793, 1e-10},
	{2.0, 1e-20, 5.7735026918962575e-21, -1.3169578969248166},
	{-2.0, -1e-20, 3.141592653589793, 1.3169578969248166},
	{0.9999999999999999, 0, 1.4901161193847656e-08, negZero},
	{-0.9999999999999999, 0, 3.141592638688632, negZero},
	{10000000000.0, 10000000000.0, 0.7853981633974484, -24.065571700780374},
	{-1e+150, 2.0, 3.141592653589793, -346.0809111296668},
	{1e+300, 1e+300, 0.7853981633974483, -691.8152486690535},
	{-1e+300, -1e-300, 3.141592653589793, 691.4686750787736},
	{1.5e+308, 1.0, 6.66666666666667e-309, -710.2948209308341},
	{-1.5e+308, -1.0, 3.141592653589793, 710.2948209308341},
	{1.0, 1.7e+308, 1.5707963267948966, -710.4199840737882},
	{-1e-10, -1.7e+308, 1.5707963267948966, 710.4199840737882},
	{1e-310, 1e-310, 1.5707963267948966, -1.00000000000005e-310},
	{3e-320, -4e-320, 1.5707963267948966, 4e-320},
	{1e-08, 100000000.0, 1.5707963267948966, -19.11382792451231},
	{-123.456, 0.001, 3.141584553272214, -5.5090155947624755},
	{0.08957307212181265, -2.10353007153653e-07, 1.4811030410025745, 2.112019856611163e-07},
	{6.425485839826167e-06, -811.7399161206349, 1.5707963188792073, 7.392327548478006},
	{8.194081262862045e-07, -5.706036383286766e-06, 1.5707955073867703, 5.706036383257718e-06},
	{-0.16365569725848106, -51.867399974594996, 1.5739510009565905, 4.641935532935849},
	{-0.8817789878420217, 0.00013090738838615935, 2.650416995590785, -0.0002775443882545646},
	{2548.664448111786, 895.4178849140113, 0.33785766914692483, -8.594665854626557},
	{-206.6390506984397, 9.525102111858401e-07, 3.141592648980203, -6.024114880455694},
	{71.69369180973591, -4.207814273366475e-05, 5.86972653867987e-07, 4.965501302137857},
	{-76.44155238432633, -3830.3635179613125, 1.5907504130554972, 8.944061284561288},
	{-7.938885751128173e-05, 0.0001424087828235845, 1.5708757156516864, -0.00014240878279100875},
	{-0.08051388480105333, 424.22153149230724, 1.5709861183405014, -6.743404386456378},
	{2.3801918634710772e-07, -0.7171009773016435, 1.5707961333686091, 0.6666199531670894},
}
