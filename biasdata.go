package hll

// Empirical HyperLogLog++ bias data for precisions 4 through 16. For each precision,
// estimateMap holds the mean raw estimate observed at a series of true cardinalities
// spread over (0, 5.2m], and biasMap holds the matching mean bias (raw estimate minus
// true cardinality). Both are indexed by precision and ordered by ascending raw estimate.

var thresholds = [maxPrecision + 1]float64{
	4:  10,
	5:  20,
	6:  40,
	7:  80,
	8:  220,
	9:  400,
	10: 900,
	11: 1800,
	12: 3100,
	13: 6500,
	14: 11500,
	15: 20000,
	16: 50000,
}

var estimateMap = [maxPrecision + 1][]float64{
	4: {
		11.238, 11.7231, 12.2241, 12.7401, 13.2716, 13.8186, 14.3813, 14.9617, 15.5559, 16.1666, 16.7922,
		17.4316, 18.0868, 18.7623, 19.4493, 20.1495, 20.8668, 21.5948, 22.3393, 23.0998, 23.8748,
		24.6586, 25.4541, 26.2661, 27.0859, 27.9184, 28.7581, 29.6169, 30.4782, 31.3528, 32.2297,
		33.1234, 34.0254, 34.9281, 35.8421, 36.7623, 37.6907, 38.6255, 39.5685, 40.5172, 41.4685,
		42.4315, 43.3863, 44.3464, 45.3075, 46.2768, 47.2548, 48.2284, 49.2019, 50.1684, 51.149, 52.1181,
		53.0979, 54.0775, 55.0565, 56.0582, 57.0374, 58.018, 59.0044, 59.9895, 60.9731, 61.9678, 62.9609,
		63.9538, 64.9481, 65.9481, 66.9319, 67.9167, 68.9052, 69.9152, 70.8983, 71.9048, 72.9063,
		73.9059, 74.9003, 75.9133, 76.8957, 77.8921, 78.8956, 79.8975, 80.8919, 81.8908, 82.886, 83.8723,
	},
	5: {
		22.7794, 23.262, 23.752, 24.2494, 24.754, 25.2652, 25.7852, 26.3126, 26.8481, 27.39, 27.9398,
		28.4956, 29.0602, 29.6311, 30.2112, 30.7995, 31.3945, 31.9961, 32.6072, 33.2228, 33.8498, 34.481,
		35.1201, 35.7636, 36.4153, 37.0771, 37.7477, 38.4247, 39.1066, 39.7961, 40.4911, 41.1946,
		41.9052, 42.6188, 43.34, 44.0678, 44.8022, 45.5478, 46.2993, 47.0497, 47.8131, 48.5817, 49.3536,
		50.1375, 50.9232, 51.7158, 52.5162, 53.3191, 54.1245, 54.9406, 55.7569, 56.5841, 57.4123,
		58.2417, 59.0791, 59.9231, 60.7714, 61.6179, 62.4797, 63.3428, 64.2095, 65.0803, 65.9591,
		66.8385, 67.7238, 68.6083, 69.5086, 70.4007, 71.2997, 72.2024, 73.1063, 74.0175, 74.9319,
		75.8473, 76.7651, 77.6775, 78.6033, 79.5243, 80.4555, 81.3869, 82.3226, 83.2573, 84.199, 85.1371,
		86.0837, 87.0232, 87.9804, 88.937, 89.8975, 90.8498, 91.8017, 92.7606, 93.7243, 94.6869, 95.653,
		96.6153, 97.5852, 98.5526, 99.5247, 100.4957, 101.4612, 102.4336, 103.4071, 104.3791, 105.3539,
		106.333, 107.3161, 108.2854, 109.2765, 110.2588, 111.2384, 112.2167, 113.2016, 114.1776,
		115.1707, 116.1563, 117.1444, 118.1383, 119.1315, 120.1257, 121.1237, 122.1138, 123.1025,
		124.0894, 125.0778, 126.0763, 127.0631, 128.0598, 129.0552, 130.05, 131.0435, 132.0356, 133.0363,
		134.0252, 135.0163, 136.0076, 136.999, 137.9908, 138.9859, 139.9842, 140.9742, 141.967, 142.9673,
		143.963, 144.9715, 145.9737, 146.9763, 147.9854, 148.9785, 149.9688, 150.9664, 151.9585,
		152.9578, 153.9594, 154.9622, 155.9593, 156.9562, 157.9508, 158.9488, 159.9417, 160.9429,
		161.9485, 162.9468, 163.9383, 164.9455, 165.95, 166.9424,
	},
	6: {
		45.8539, 46.3353, 46.8211, 47.3094, 47.8011, 48.2979, 48.7983, 49.3023, 49.8096, 50.3208,
		50.8351, 51.3525, 51.8742, 52.3988, 52.9275, 53.4596, 53.9961, 54.5374, 55.0821, 55.6306, 56.18,
		56.7363, 57.2953, 57.8571, 58.4235, 58.9944, 59.5672, 60.1452, 60.7259, 61.3119, 61.9005,
		62.4917, 63.0858, 63.6831, 64.2847, 64.8919, 65.5026, 66.1156, 66.7319, 67.354, 67.9765, 68.606,
		69.2367, 69.8704, 70.5076, 71.1499, 71.7975, 72.4448, 73.0977, 73.7534, 74.4146, 75.0761,
		75.7408, 76.4104, 77.0831, 77.7625, 78.4419, 79.1216, 79.8087, 80.4994, 81.194, 81.8933, 82.594,
		83.2947, 84.0011, 84.7103, 85.4241, 86.1408, 86.8655, 87.5856, 88.3096, 89.0392, 89.7718,
		90.5055, 91.2429, 91.9819, 92.7254, 93.4743, 94.2265, 94.9782, 95.7358, 96.4954, 97.2601,
		98.0271, 98.7996, 99.5703, 100.3422, 101.1227, 101.9046, 102.686, 103.4696, 104.2575, 105.0447,
		105.8365, 106.6374, 107.4395, 108.2396, 109.0407, 109.8484, 110.6575, 111.4714, 112.2898,
		113.1072, 113.9289, 114.7491, 115.5671, 116.3988, 117.2308, 118.0692, 118.9094, 119.7448,
		120.5806, 121.4279, 122.2698, 123.1142, 123.9668, 124.8207, 125.6749, 126.5304, 127.3919,
		128.2561, 129.1176, 129.9905, 130.8515, 131.721, 132.5928, 133.4637, 134.3429, 135.2197,
		136.0985, 136.9819, 137.8631, 138.7516, 139.6392, 140.5316, 141.4228, 142.3131, 143.2031,
		144.0958, 144.9964, 145.8955, 146.7976, 147.7043, 148.6104, 149.5196, 150.4306, 151.3381,
		152.2537, 153.1686, 154.0799, 154.9934, 155.9093, 156.8281, 157.7494, 158.6786, 159.6024,
		160.5229, 161.449, 162.3853, 163.3157, 164.2552, 165.1831, 166.1109, 167.0437, 167.9811,
		168.9065, 169.8476, 170.7837, 171.716, 172.6554, 173.6021, 174.5361, 175.4735, 176.4193,
		177.3686, 178.3197, 179.2702, 180.2233, 181.1716, 182.1263, 183.077, 184.0306, 184.9797, 185.939,
		186.8992, 187.8547, 188.8191, 189.7732, 190.7265, 191.6784, 192.6412, 193.6076, 194.5657,
		195.5249, 196.484, 197.4459, 198.408, 199.3775, 200.3416, 201.3028, 202.2738, 203.2286, 204.2086,
		205.17, 206.1287, 207.0962, 208.0687, 209.0392, 210.0173, 210.9971, 211.9657, 212.9358, 213.9188,
		214.8959, 215.871, 216.8468, 217.818, 218.7977, 219.7726, 220.7486, 221.7317, 222.7196, 223.7065,
		224.6728, 225.6552, 226.6288, 227.6123, 228.6033, 229.5849, 230.5692, 231.5549, 232.5284,
		233.5086, 234.4893, 235.4764, 236.4659, 237.4469, 238.43, 239.4166, 240.4016, 241.3911, 242.3795,
		243.3612, 244.3506, 245.3387, 246.3243, 247.3039, 248.3028, 249.2814, 250.2682, 251.2514,
		252.2475, 253.2415, 254.2294, 255.2173, 256.2126, 257.209, 258.1853, 259.1783, 260.1764,
		261.1716, 262.1626, 263.1631, 264.1713, 265.1674, 266.1536, 267.1469, 268.1428, 269.1427,
		270.1386, 271.1317, 272.118, 273.1067, 274.089, 275.077, 276.0775, 277.0657, 278.0585, 279.0532,
		280.0397, 281.0384, 282.0426, 283.0395, 284.0378, 285.0467, 286.0495, 287.0428, 288.049,
		289.0372, 290.0274, 291.014, 291.9984, 292.9998, 293.9898, 294.9771, 295.9713, 296.9699,
		297.9724, 298.9726, 299.9566, 300.9508, 301.9408, 302.9382, 303.9274, 304.9248, 305.9204,
		306.9241, 307.904, 308.9071, 309.91, 310.9025, 311.9126, 312.9133, 313.9212, 314.9182, 315.9007,
		316.8959, 317.8993, 318.9033, 319.8921, 320.9011, 321.8917, 322.8875, 323.8923, 324.8992,
		325.9058, 326.9033, 327.9089, 328.9142, 329.9171, 330.9067, 331.913, 332.9079,
	},
	7: {
		92.998, 94.4584, 95.9355, 97.4278, 98.9358, 100.462, 102.003, 103.5624, 105.1372, 106.7291,
		108.3369, 109.9605, 111.5987, 113.2565, 114.9303, 116.62, 118.3268, 120.0509, 121.7873, 123.5433,
		125.3107, 127.0985, 128.9013, 130.7193, 132.5549, 134.406, 136.2753, 138.1586, 140.0582,
		141.9753, 143.9046, 145.8501, 147.814, 149.792, 151.7829, 153.7913, 155.8155, 157.8527, 159.905,
		161.9744, 164.054, 166.1528, 168.261, 170.3902, 172.5288, 174.6824, 176.853, 179.0389, 181.2363,
		183.4456, 185.6749, 187.9136, 190.1633, 192.4346, 194.7217, 197.0131, 199.3234, 201.6418,
		203.9793, 206.3245, 208.6797, 211.0441, 213.4223, 215.814, 218.2213, 220.6438, 223.0769, 225.519,
		227.9709, 230.4336, 232.902, 235.3777, 237.8764, 240.3752, 242.8977, 245.4275, 247.9661,
		250.5165, 253.0712, 255.6413, 258.2296, 260.8217, 263.416, 266.0117, 268.628, 271.2516, 273.8781,
		276.5255, 279.1788, 281.8384, 284.5099, 287.1834, 289.857, 292.5463, 295.2593, 297.9618,
		300.6699, 303.3995, 306.1314, 308.8698, 311.6196, 314.356, 317.1009, 319.8495, 322.6175,
		325.3874, 328.1623, 330.9617, 333.7359, 336.5258, 339.3337, 342.1491, 344.9557, 347.7659,
		350.5797, 353.3933, 356.2237, 359.0752, 361.9137, 364.7649, 367.621, 370.4714, 373.3366,
		376.2006, 379.0662, 381.9321, 384.8058, 387.6736, 390.5528, 393.4231, 396.3057, 399.1928,
		402.0789, 404.9538, 407.8514, 410.7515, 413.6568, 416.56, 419.4708, 422.3877, 425.2986, 428.2178,
		431.1328, 434.0575, 436.9931, 439.9329, 442.8683, 445.8109, 448.7433, 451.6801, 454.6272,
		457.5898, 460.5402, 463.4887, 466.4254, 469.3845, 472.3317, 475.2846, 478.2235, 481.1619,
		484.1234, 487.1078, 490.0732, 493.0349, 495.981, 498.9651, 501.9283, 504.8821, 507.8559,
		510.8146, 513.7891, 516.7705, 519.7345, 522.6882, 525.66, 528.638, 531.6281, 534.5909, 537.5846,
		540.5784, 543.5301, 546.5096, 549.4889, 552.4785, 555.4455, 558.4307, 561.4056, 564.3623,
		567.3405, 570.3396, 573.3147, 576.2926, 579.3069, 582.293, 585.2852, 588.2617, 591.2704,
		594.2703, 597.2647, 600.2801, 603.2626, 606.2594, 609.2302, 612.2276, 615.23, 618.236, 621.2348,
		624.2107, 627.2059, 630.2086, 633.1924, 636.1777, 639.171, 642.1867, 645.1828, 648.1668,
		651.1739, 654.1782, 657.164, 660.156, 663.1503, 666.1358,
	},
	8: {
		186.7721, 189.6974, 192.6578, 195.6493, 198.6727, 201.7295, 204.8189, 207.941, 211.0973,
		214.2832, 217.5012, 220.7541, 224.0386, 227.3589, 230.7092, 234.0941, 237.5099, 240.9561,
		244.4336, 247.9516, 251.4964, 255.0734, 258.6856, 262.3313, 266.0052, 269.7141, 273.4524,
		277.2163, 281.0177, 284.8494, 288.7145, 292.6087, 296.5301, 300.4854, 304.4733, 308.4874,
		312.527, 316.6016, 320.7138, 324.8514, 329.0227, 333.2113, 337.4448, 341.697, 345.9681, 350.2832,
		354.6199, 358.9813, 363.3734, 367.7885, 372.23, 376.7048, 381.21, 385.7385, 390.2925, 394.8738,
		399.4813, 404.1217, 408.7843, 413.4759, 418.198, 422.9327, 427.6875, 432.4774, 437.2997,
		442.1363, 446.9825, 451.8536, 456.7609, 461.6719, 466.6191, 471.5819, 476.575, 481.5952,
		486.6283, 491.6794, 496.7493, 501.8332, 506.9397, 512.0656, 517.1981, 522.3655, 527.5551,
		532.7548, 537.9666, 543.1997, 548.4567, 553.7478, 559.0484, 564.3459, 569.6744, 575.0208,
		580.373, 585.7366, 591.1249, 596.5219, 601.9402, 607.3772, 612.8191, 618.2819, 623.7652,
		629.2428, 634.7541, 640.2672, 645.7797, 651.3252, 656.8639, 662.4391, 668.0208, 673.5865,
		679.1829, 684.7886, 690.416, 696.0509, 701.6902, 707.3338, 712.976, 718.6312, 724.3168, 730.0081,
		735.7095, 741.41, 747.1285, 752.8423, 758.5558, 764.2751, 770.0097, 775.7558, 781.5196, 787.2963,
		793.0494, 798.8208, 804.5994, 810.3849, 816.1908, 821.9558, 827.7393, 833.5632, 839.3775,
		845.2045, 851.0236, 856.8457, 862.6771, 868.5134, 874.3757, 880.2118, 886.0611, 891.951,
		897.8195, 903.7064, 909.5657, 915.456, 921.3395, 927.2293, 933.1082, 939.0073, 944.9193,
		950.8347, 956.7334, 962.61, 968.5154, 974.4224, 980.3533, 986.3101, 992.2295, 998.1408,
		1004.0694, 1009.9953, 1015.924, 1021.8448, 1027.759, 1033.6742, 1039.6128, 1045.546, 1051.4763,
		1057.421, 1063.3649, 1069.3279, 1075.3058, 1081.2667, 1087.2212, 1093.1606, 1099.1015, 1105.0431,
		1110.9819, 1116.9317, 1122.9062, 1128.8601, 1134.833, 1140.8348, 1146.805, 1152.8013, 1158.756,
		1164.756, 1170.7305, 1176.7426, 1182.7315, 1188.6969, 1194.6841, 1200.6696, 1206.6245, 1212.5972,
		1218.5762, 1224.5627, 1230.5315, 1236.5276, 1242.5076, 1248.4933, 1254.464, 1260.4214, 1266.4173,
		1272.408, 1278.4058, 1284.3839, 1290.3922, 1296.3831, 1302.3517, 1308.3293, 1314.2974, 1320.3143,
		1326.3084, 1332.2982,
	},
	9: {
		374.8096, 381.1676, 387.6018, 394.113, 400.7024, 407.3639, 414.1001, 420.9145, 427.8083,
		434.7798, 441.8284, 448.9516, 456.1452, 463.4174, 470.7655, 478.1919, 485.6917, 493.2727,
		500.9287, 508.6632, 516.4716, 524.3545, 532.3044, 540.337, 548.4406, 556.623, 564.8694, 573.1901,
		581.5861, 590.0575, 598.5958, 607.2133, 615.9009, 624.6528, 633.481, 642.3849, 651.3528,
		660.3961, 669.5055, 678.6685, 687.9099, 697.2308, 706.5996, 716.0403, 725.5494, 735.1103,
		744.7529, 754.4644, 764.2258, 774.0364, 783.9301, 793.8624, 803.8551, 813.918, 824.048, 834.2072,
		844.4249, 854.7218, 865.0836, 875.4993, 885.9545, 896.4593, 907.0459, 917.67, 928.3495, 939.0616,
		949.8467, 960.69, 971.5604, 982.463, 993.4207, 1004.4596, 1015.5248, 1026.6438, 1037.79,
		1048.9789, 1060.2149, 1071.5058, 1082.8364, 1094.1955, 1105.602, 1117.0391, 1128.5526, 1140.0817,
		1151.6367, 1163.2304, 1174.8744, 1186.5554, 1198.2644, 1210.0135, 1221.8165, 1233.6274, 1245.438,
		1257.3117, 1269.2102, 1281.1622, 1293.0965, 1305.0791, 1317.1043, 1329.1297, 1341.2101, 1353.321,
		1365.4505, 1377.5835, 1389.7348, 1401.9078, 1414.1353, 1426.3567, 1438.6256, 1450.9219,
		1463.2331, 1475.54, 1487.8913, 1500.2451, 1512.6048, 1525.0234, 1537.4653, 1549.9165, 1562.3523,
		1574.8311, 1587.3154, 1599.8262, 1612.3722, 1624.9334, 1637.4734, 1650.0472, 1662.6272,
		1675.1968, 1687.798, 1700.4363, 1713.0717, 1725.7041, 1738.3666, 1751.0339, 1763.7027, 1776.4158,
		1789.1219, 1801.8239, 1814.5451, 1827.2878, 1840.039, 1852.7851, 1865.5163, 1878.256, 1891.0318,
		1903.827, 1916.6218, 1929.423, 1942.1898, 1954.9967, 1967.8012, 1980.6167, 1993.5006, 2006.3104,
		2019.1721, 2032.0066, 2044.8627, 2057.7048, 2070.5922, 2083.4322, 2096.2494, 2109.1379,
		2122.0602, 2134.9589, 2147.8661, 2160.7812, 2173.6465, 2186.5361, 2199.4219, 2212.3357,
		2225.2414, 2238.1609, 2251.0467, 2263.9492, 2276.8909, 2289.8354, 2302.7894, 2315.7937,
		2328.7368, 2341.6522, 2354.6258, 2367.5642, 2380.5227, 2393.4349, 2406.3588, 2419.3076,
		2432.2443, 2445.1811, 2458.1332, 2471.1149, 2484.0396, 2497.012, 2509.9723, 2522.923, 2535.8776,
		2548.8372, 2561.8133, 2574.7564, 2587.7084, 2600.6989, 2613.6715, 2626.6405, 2639.6149, 2652.552,
	},
	10: {
		750.4061, 763.128, 776.0052, 789.0306, 802.2081, 815.5367, 829.0193, 842.6545, 856.4421,
		870.3876, 884.4833, 898.7294, 913.1278, 927.682, 942.3891, 957.2392, 972.2407, 987.398,
		1002.7142, 1018.1772, 1033.7914, 1049.5431, 1065.455, 1081.5058, 1097.7149, 1114.0681, 1130.5781,
		1147.2341, 1164.034, 1180.9722, 1198.0618, 1215.2925, 1232.6651, 1250.1811, 1267.835, 1285.6388,
		1303.5637, 1321.6214, 1339.8249, 1358.1882, 1376.6746, 1395.2983, 1414.0409, 1432.9071, 1451.904,
		1471.0338, 1490.295, 1509.6902, 1529.2159, 1548.832, 1568.5873, 1588.4549, 1608.4708, 1628.5971,
		1648.8252, 1669.1796, 1689.6649, 1710.2519, 1730.9367, 1751.7508, 1772.6771, 1793.6799,
		1814.8204, 1836.047, 1857.3742, 1878.8262, 1900.3702, 1922.0013, 1943.7459, 1965.5782, 1987.5215,
		2009.5589, 2031.7071, 2053.9007, 2076.1927, 2098.6189, 2121.0713, 2143.6271, 2166.2784,
		2189.0225, 2211.815, 2234.6703, 2257.6388, 2280.647, 2303.7648, 2326.9648, 2350.1994, 2373.5178,
		2396.9113, 2420.3605, 2443.8813, 2467.4438, 2491.097, 2514.8145, 2538.5911, 2562.4342, 2586.3271,
		2610.3174, 2634.3422, 2658.3791, 2682.5228, 2706.713, 2730.9444, 2755.2853, 2779.6191, 2803.9835,
		2828.422, 2852.9035, 2877.4157, 2901.9534, 2926.5739, 2951.2657, 2975.9495, 3000.6948, 3025.4255,
		3050.2185, 3075.0865, 3099.9565, 3124.9554, 3149.8803, 3174.8809, 3199.912, 3224.9435, 3250.0302,
		3275.0946, 3300.2665, 3325.4273, 3350.5683, 3375.7654, 3400.935, 3426.1886, 3451.5149, 3476.8226,
		3502.1239, 3527.4773, 3552.8618, 3578.2946, 3603.697, 3629.1006, 3654.5286, 3679.9925, 3705.5013,
		3730.9966, 3756.5225, 3782.0298, 3807.6088, 3833.1277, 3858.7579, 3884.3682, 3909.9466,
		3935.5742, 3961.236, 3986.8323, 4012.484, 4038.1408, 4063.8696, 4089.6017, 4115.2814, 4140.9762,
		4166.6987, 4192.4799, 4218.2269, 4243.9435, 4269.7301, 4295.5228, 4321.3229, 4347.1378,
		4372.8838, 4398.6773, 4424.5031, 4450.2919, 4476.1481, 4501.9852, 4527.8267, 4553.6126,
		4579.4504, 4605.2646, 4631.1416, 4657.0389, 4682.9139, 4708.8351, 4734.6739, 4760.5435,
		4786.3966, 4812.3842, 4838.2612, 4864.1305, 4890.0405, 4916.0252, 4941.9192, 4967.7293,
		4993.6253, 5019.609, 5045.5103, 5071.4383, 5097.3611, 5123.2499, 5149.2112, 5175.1934, 5201.1545,
		5227.1092, 5253.0499, 5278.9943, 5304.9238,
	},
	11: {
		1502.0783, 1528.0288, 1554.2971, 1580.879, 1607.7718, 1634.9948, 1662.517, 1690.3687, 1718.5379,
		1747.0236, 1775.8183, 1804.9291, 1834.3595, 1864.1184, 1894.1817, 1924.5599, 1955.2461,
		1986.2557, 2017.5758, 2049.2163, 2081.1606, 2113.4053, 2145.9655, 2178.8312, 2212.0095,
		2245.4857, 2279.2684, 2313.3448, 2347.7243, 2382.4209, 2417.4017, 2452.6912, 2488.281, 2524.1669,
		2560.3542, 2596.7913, 2633.5441, 2670.5864, 2707.9168, 2745.516, 2783.3765, 2821.5108, 2859.9425,
		2898.6409, 2937.6014, 2976.8346, 3016.3429, 3056.0843, 3096.094, 3136.3825, 3176.9131, 3217.6677,
		3258.6797, 3299.9262, 3341.4184, 3383.1528, 3425.1428, 3467.38, 3509.8547, 3552.5129, 3595.4104,
		3638.5079, 3681.8643, 3725.3985, 3769.1685, 3813.1435, 3857.3289, 3901.7566, 3946.3076,
		3991.1047, 4036.0777, 4081.2237, 4126.5945, 4172.1127, 4217.7922, 4263.6568, 4309.7008,
		4355.9238, 4402.309, 4448.8211, 4495.5608, 4542.4266, 4589.4613, 4636.6375, 4683.9882, 4731.4862,
		4779.1655, 4826.9042, 4874.829, 4922.8915, 4971.0868, 5019.3847, 5067.8329, 5116.4264, 5165.1244,
		5213.9704, 5262.8481, 5311.9174, 5361.0975, 5410.3747, 5459.8159, 5509.3024, 5558.9396, 5608.673,
		5658.3533, 5708.3259, 5758.3465, 5808.424, 5858.5772, 5908.8055, 5959.1335, 6009.5487, 6060.0559,
		6110.558, 6161.1713, 6211.8626, 6262.67, 6313.5408, 6364.4326, 6415.3983, 6466.4075, 6517.573,
		6568.7693, 6620.0129, 6671.2502, 6722.5618, 6773.9593, 6825.4481, 6877.0023, 6928.6023,
		6980.2288, 7031.8893, 7083.6138, 7135.3627, 7187.0972, 7238.936, 7290.8669, 7342.7456, 7394.6512,
		7446.6029, 7498.6547, 7550.734, 7602.7438, 7654.7834, 7706.9529, 7759.0832, 7811.2965, 7863.5515,
		7915.8368, 7968.1667, 8020.5213, 8072.9307, 8125.28, 8177.6073, 8229.9078, 8282.3229, 8334.7309,
		8387.1432, 8439.6269, 8492.1124, 8544.5601, 8597.1161, 8649.6265, 8702.2372, 8754.7655,
		8807.4094, 8859.9675, 8912.5964, 8965.231, 9017.9153, 9070.5411, 9123.2596, 9175.9535, 9228.6725,
		9281.3857, 9334.1349, 9386.8593, 9439.6034, 9492.4228, 9545.2497, 9598.0166, 9650.7428,
		9703.5642, 9756.3843, 9809.1871, 9861.909, 9914.6904, 9967.4851, 10020.3607, 10073.2014,
		10126.0186, 10178.8122, 10231.7727, 10284.5978, 10337.5155, 10390.3187, 10443.2755, 10496.1751,
		10549.0955, 10602.0199,
	},
	12: {
		3004.9464, 3056.8586, 3109.392, 3162.5665, 3216.3599, 3270.7782, 3325.8348, 3381.5461, 3437.8758,
		3494.8602, 3552.4694, 3610.7137, 3669.5969, 3729.0972, 3789.2253, 3849.9816, 3911.3888,
		3973.3967, 4036.0375, 4099.3378, 4163.244, 4227.7547, 4292.8932, 4358.6443, 4425.0204, 4491.9752,
		4559.5365, 4627.7113, 4696.5185, 4765.9156, 4835.9202, 4906.4768, 4977.6744, 5049.4109,
		5121.8109, 5194.7448, 5268.2024, 5342.2349, 5416.8547, 5492.0531, 5567.766, 5644.0951, 5720.9044,
		5798.2992, 5876.2504, 5954.712, 6033.653, 6113.1284, 6193.1299, 6273.6667, 6354.7621, 6436.2674,
		6518.3075, 6600.8209, 6683.808, 6767.2372, 6851.1501, 6935.5421, 7020.3983, 7105.7307, 7191.5345,
		7277.7105, 7364.3194, 7451.3432, 7538.8361, 7626.7095, 7714.9851, 7803.6645, 7892.8513, 7982.331,
		8072.2307, 8162.5289, 8253.2115, 8344.1796, 8435.479, 8527.2295, 8619.2707, 8711.645, 8804.489,
		8897.5451, 8991.0701, 9084.7627, 9178.925, 9273.3701, 9368.0098, 9463.0333, 9558.3658, 9653.8642,
		9749.6601, 9845.6753, 9942.0275, 10038.6837, 10135.4973, 10232.6054, 10330.0145, 10427.6697,
		10525.4394, 10623.5696, 10721.9891, 10820.5849, 10919.3515, 11018.3334, 11117.5052, 11216.8415,
		11316.3588, 11416.0165, 11515.9526, 11616.0257, 11716.2245, 11816.7031, 11917.4433, 12018.3611,
		12119.1531, 12220.2624, 12321.61, 12423.0118, 12524.5889, 12626.2017, 12728.0388, 12830.0304,
		12932.1484, 13034.2625, 13136.5917, 13238.9921, 13341.4334, 13443.9947, 13546.8379, 13649.7275,
		13752.5988, 13855.6892, 13958.9881, 14062.3848, 14165.7612, 14269.185, 14372.6905, 14476.3974,
		14580.1079, 14683.9191, 14787.8263, 14891.7144, 14995.6525, 15099.6596, 15203.7986, 15308.0545,
		15412.3084, 15516.691, 15621.1489, 15725.7455, 15830.2139, 15934.74, 16039.2797, 16144.0904,
		16248.8928, 16353.757, 16458.4847, 16563.415, 16668.3132, 16773.2431, 16878.0777, 16982.9624,
		17088.2029, 17193.2836, 17298.3609, 17403.442, 17508.6755, 17613.9655, 17719.2182, 17824.417,
		17929.6839, 18035.256, 18140.5058, 18245.829, 18351.2386, 18456.6611, 18562.0763, 18667.3196,
		18772.635, 18878.2533, 18983.8198, 19089.4086, 19194.9263, 19300.5887, 19406.1874, 19511.9142,
		19617.6116, 19723.3734, 19828.8498, 19934.7351, 20040.5749, 20146.303, 20252.0191, 20357.7445,
		20463.5341, 20569.3992, 20675.1109, 20780.7968, 20886.7021, 20992.6176, 21098.4279, 21204.2383,
	},
	13: {
		6010.6749, 6114.5253, 6219.6175, 6325.9515, 6433.5471, 6542.4083, 6652.5336, 6763.963, 6876.6765,
		6990.6403, 7105.8509, 7222.3515, 7340.128, 7459.1182, 7579.4132, 7700.9908, 7823.7651, 7947.8083,
		8073.1013, 8199.6874, 8327.4607, 8456.4863, 8586.7368, 8718.2819, 8851.026, 8984.9592, 9120.1401,
		9256.459, 9394.017, 9532.8203, 9672.7662, 9813.9671, 9956.281, 10099.7296, 10244.3959,
		10390.2557, 10537.2449, 10685.3927, 10834.5664, 10984.8908, 11136.3713, 11288.9121, 11442.5643,
		11597.3467, 11753.2938, 11910.2698, 12068.1789, 12227.1439, 12387.197, 12548.17, 12710.3644,
		12873.4634, 13037.3947, 13202.4862, 13368.5873, 13535.5828, 13703.5838, 13872.4064, 14042.2654,
		14212.8425, 14384.2741, 14556.71, 14730.093, 14904.2628, 15079.1991, 15255.0233, 15431.7776,
		15609.169, 15787.4963, 15966.5414, 16146.3459, 16326.8802, 16508.2601, 16690.2567, 16873.024,
		17056.5555, 17240.8476, 17425.7663, 17611.1228, 17797.2969, 17984.0573, 18171.6667, 18359.7104,
		18548.5958, 18737.87, 18927.7673, 19118.3188, 19309.287, 19500.9919, 19693.0494, 19885.7363,
		20078.8528, 20272.5809, 20466.7555, 20661.5471, 20856.7156, 21052.2849, 21248.3754, 21445.066,
		21641.884, 21839.257, 22037.1114, 22235.526, 22434.0862, 22633.0877, 22832.7011, 23032.2875,
		23232.5486, 23433.0888, 23633.9355, 23835.0167, 24036.874, 24238.8828, 24440.9557, 24643.2513,
		24845.9346, 25049.0311, 25252.383, 25456.0299, 25659.9924, 25864.0184, 26068.0343, 26272.7232,
		26477.4111, 26682.4463, 26887.9634, 27093.556, 27299.4579, 27505.4821, 27711.8253, 27918.3027,
		28124.8629, 28331.6743, 28538.4772, 28745.4668, 28952.5156, 29160.2041, 29367.8822, 29575.692,
		29783.562, 29992.0885, 30200.3567, 30408.8043, 30616.8917, 30825.5368, 31034.3767, 31243.3871,
		31452.4549, 31661.806, 31871.2964, 32080.7413, 32290.1212, 32499.4692, 32708.7268, 32918.2541,
		33127.7973, 33337.4849, 33547.472, 33757.2886, 33967.2931, 34177.4572, 34387.3864, 34597.6896,
		34808.0138, 35018.369, 35228.7917, 35439.2775, 35650.0268, 35861.0089, 36071.8877, 36282.6145,
		36493.1525, 36704.1123, 36915.2218, 37125.9271, 37336.7161, 37547.7519, 37758.7611, 37969.8287,
		38181.3287, 38392.521, 38603.6041, 38814.713, 39026.0605, 39237.6254, 39449.1415, 39660.4848,
		39871.5859, 40082.9806, 40294.4902, 40505.8838, 40717.185, 40928.4281, 41139.4307, 41351.198,
		41562.7461, 41774.3964, 41986.2368, 42198.1455, 42409.1956,
	},
	14: {
		12022.6423, 12230.8071, 12441.4535, 12654.6809, 12870.4333, 13088.7245, 13309.5522, 13533.0511,
		13759.0354, 13987.5572, 14218.6242, 14452.1678, 14688.2307, 14926.8724, 15168.119, 15411.7941,
		15658.1561, 15906.9096, 16158.2175, 16412.0161, 16668.3065, 16927.1147, 17188.3375, 17452.1659,
		17718.4016, 17987.1183, 18258.2028, 18531.826, 18807.8491, 19086.0868, 19366.9535, 19650.0524,
		19935.6608, 20223.4728, 20513.6854, 20806.2099, 21101.0641, 21398.0764, 21697.7659, 21999.5527,
		22303.4319, 22609.5438, 22917.9137, 23228.1791, 23540.7912, 23855.5699, 24172.3983, 24491.4051,
		24812.4471, 25135.6355, 25460.5672, 25787.5165, 26116.8238, 26447.7462, 26780.7036, 27115.2704,
		27452.0521, 27790.7846, 28131.2174, 28473.3825, 28817.5775, 29163.454, 29510.9309, 29860.3414,
		30211.427, 30563.8803, 30918.2882, 31274.2008, 31631.6595, 31991.0151, 32352.1531, 32714.1499,
		33077.9914, 33443.2794, 33810.1267, 34177.7938, 34547.3002, 34918.3082, 35290.0295, 35663.1821,
		36037.9637, 36414.0311, 36791.2986, 37170.2781, 37550.1066, 37931.1877, 38313.0411, 38696.4905,
		39081.0961, 39466.4427, 39852.9748, 40240.7366, 40629.046, 41018.4066, 41408.9458, 41800.2509,
		42192.8625, 42586.3222, 42980.3056, 43375.4429, 43771.4196, 44168.5856, 44566.6079, 44965.0129,
		45364.261, 45764.2271, 46165.4577, 46566.8078, 46969.0399, 47371.8859, 47775.6917, 48179.7959,
		48584.0924, 48990.2546, 49396.0586, 49802.4093, 50210.0012, 50617.4222, 51025.7427, 51434.9708,
		51843.8997, 52253.868, 52664.3392, 53075.1106, 53486.3232, 53898.2655, 54310.3133, 54722.8791,
		55136.2057, 55549.8513, 55963.6339, 56378.339, 56792.9634, 57207.554, 57623.4177, 58038.602,
		58454.5205, 58871.3184, 59287.3352, 59704.1436, 60120.7345, 60538.2674, 60955.9705, 61373.5306,
		61791.6075, 62210.2136, 62628.9436, 63047.9435, 63467.3644, 63886.6553, 64305.6609, 64725.6384,
		65145.4288, 65565.8458, 65985.7966, 66405.7939, 66825.9903, 67247.2909, 67668.3129, 68089.1792,
		68510.7334, 68931.945, 69353.5452, 69774.5499, 70195.6665, 70617.7172, 71039.8377, 71462.6108,
		71885.6353, 72308.1926, 72730.725, 73152.5688, 73575.7179, 73998.5027, 74420.9386, 74843.9179,
		75267.6374, 75691.0254, 76114.4806, 76538.2367, 76961.6357, 77384.9554, 77808.6783, 78232.6023,
		78656.2608, 79079.8315, 79503.2439, 79927.0837, 80351.0133, 80775.1205, 81199.228, 81622.6892,
		82046.877, 82470.7414, 82894.7323, 83318.235, 83741.8172, 84165.3569, 84588.2754, 85012.3448,
	},
	15: {
		24046.4708, 24463.3258, 24885.2122, 25312.1519, 25744.2408, 26181.355, 26623.5965, 27070.9466,
		27523.4374, 27980.9645, 28443.671, 28911.496, 29384.2257, 29862.0712, 30345.2106, 30833.1718,
		31326.3542, 31824.4745, 32327.7676, 32836.1314, 33349.3081, 33867.7213, 34390.8346, 34919.0717,
		35451.9873, 35990.0656, 36533.1042, 37080.9498, 37633.6396, 38191.2102, 38753.771, 39320.8525,
		39892.7425, 40469.4014, 41050.3427, 41636.495, 42227.1359, 42822.3726, 43421.951, 44026.5516,
		44635.3181, 45248.2918, 45865.8139, 46487.7553, 47113.874, 47744.1992, 48378.6556, 49017.195,
		49660.7255, 50307.8295, 50959.3224, 51614.4222, 52273.9309, 52937.0406, 53604.3355, 54275.1573,
		54949.5811, 55627.3741, 56309.1257, 56994.3339, 57683.6913, 58376.4695, 59072.4644, 59772.0562,
		60476.1815, 61182.6262, 61892.231, 62605.9125, 63321.854, 64041.2523, 64763.7263, 65489.5928,
		66217.4942, 66949.4473, 67684.2198, 68422.2238, 69162.2367, 69905.8139, 70651.5082, 71399.4485,
		72150.3676, 72904.2006, 73660.3149, 74418.3184, 75178.5317, 75941.1621, 76707.797, 77475.4386,
		78245.7279, 79017.116, 79790.8799, 80567.3762, 81344.9416, 82124.6067, 82906.7706, 83690.8638,
		84476.4656, 85263.703, 86052.8821, 86843.7218, 87635.7626, 88430.4157, 89226.9053, 90024.079,
		90824.0157, 91625.8996, 92428.3372, 93232.992, 94038.3709, 94845.8416, 95653.9043, 96463.056,
		97274.1336, 98087.0531, 98901.0646, 99714.7882, 100530.239, 101347.0538, 102165.7967,
		102983.8175, 103802.8736, 104623.5988, 105445.2128, 106269.6947, 107094.8036, 107919.5413,
		108744.7422, 109571.0501, 110398.3654, 111226.2897, 112053.9255, 112881.9986, 113711.6942,
		114543.8532, 115376.81, 116207.7302, 117039.0182, 117871.6693, 118705.2992, 119539.845,
		120374.9101, 121210.7062, 122046.612, 122883.2394, 123720.0876, 124556.7459, 125395.8521,
		126234.1742, 127073.7846, 127913.4245, 128753.2885, 129593.6085, 130434.891, 131275.9288,
		132117.9165, 132959.3464, 133801.5784, 134643.9562, 135488.1308, 136331.4733, 137173.3457,
		138018.5226, 138862.3838, 139706.6842, 140550.3841, 141395.2954, 142238.3916, 143084.2712,
		143930.5364, 144776.2204, 145621.1176, 146465.7951, 147311.0409, 148158.0078, 149004.4186,
		149851.2188, 150699.6188, 151546.7783, 152393.8535, 153240.0675, 154086.7738, 154934.75,
		155782.4865, 156630.3848, 157477.1206, 158326.3216, 159174.0389, 160022.5787, 160872.8282,
		161721.13, 162567.9205, 163417.6078, 164265.3124, 165114.3165, 165962.2658, 166809.4297,
		167657.9825, 168508.293, 169358.7029, 170209.3243,
	},
	16: {
		48094.3823, 48928.5138, 49772.77, 50627.2409, 51492.0746, 52367.032, 53252.2163, 54147.4629,
		55052.9627, 55968.6991, 56894.6088, 57831.029, 58777.537, 59734.2447, 60701.0681, 61678.1001,
		62665.2664, 63662.4383, 64670.018, 65687.327, 66714.7306, 67752.4082, 68799.8291, 69857.5387,
		70924.8542, 72001.4951, 73088.3824, 74184.9008, 75291.1232, 76407.8778, 77533.609, 78669.2029,
		79814.393, 80968.7232, 82131.8563, 83304.3792, 84486.7007, 85678.294, 86879.4055, 88089.5399,
		89307.526, 90534.2219, 91771.0038, 93016.2509, 94268.8886, 95531.6242, 96801.9507, 98081.3067,
		99368.7038, 100664.3152, 101967.7705, 103279.3499, 104598.658, 105926.1318, 107261.5312,
		108603.2893, 109954.3883, 111313.6681, 112679.0794, 114052.6886, 115432.4302, 116819.8824,
		118212.5222, 119613.4262, 121021.5167, 122436.2444, 123857.5236, 125284.1468, 126719.1324,
		128158.5449, 129604.5962, 131056.4244, 132516.1304, 133980.7729, 135451.2609, 136927.4071,
		138407.1322, 139893.6507, 141385.7231, 142882.8726, 144385.2149, 145892.5384, 147406.4096,
		148924.8959, 150447.4228, 151974.6787, 153505.427, 155041.8103, 156583.2228, 158127.3181,
		159677.8634, 161232.5918, 162791.3142, 164351.9796, 165918.1179, 167488.016, 169064.0222,
		170641.7681, 172223.0434, 173806.8381, 175394.0514, 176984.8887, 178578.2047, 180176.2064,
		181776.9774, 183380.0009, 184985.504, 186593.9474, 188205.5803, 189818.0646, 191436.4218,
		193055.7626, 194678.8785, 196305.7892, 197933.3637, 199563.278, 201193.908, 202827.5802,
		204465.0215, 206101.5786, 207743.1339, 209387.392, 211032.628, 212678.5899, 214326.4721,
		215976.0954, 217630.1697, 219281.3282, 220937.8687, 222595.4065, 224255.7707, 225915.4928,
		227576.4301, 229236.8005, 230901.1522, 232567.0816, 234233.8247, 235903.8423, 237574.4778,
		239246.0731, 240919.1469, 242590.9254, 244265.6054, 245940.9488, 247617.0004, 249293.4282,
		250970.664, 252647.4038, 254327.5433, 256007.0087, 257688.7006, 259371.8875, 261054.2391,
		262739.4393, 264423.5553, 266108.8956, 267796.6778, 269479.8244, 271168.489, 272854.2346,
		274543.2518, 276231.8322, 277921.749, 279610.6094, 281299.4221, 282987.8812, 284677.053,
		286369.3169, 288063.3611, 289752.5622, 291445.5293, 293138.862, 294835.083, 296525.8214,
		298222.5248, 299919.297, 301617.5648, 303313.5938, 305009.5854, 306704.4899, 308400.6337,
		310098.4166, 311797.7627, 313494.8981, 315191.2302, 316887.9835, 318586.8906, 320284.1681,
		321979.688, 323676.3814, 325377.529, 327075.0202, 328774.1611, 330474.2659, 332171.1677,
		333869.4179, 335566.1207, 337265.7683, 338966.3493, 340662.0873,
	},
}

var biasMap = [maxPrecision + 1][]float64{
	4: {
		10.238, 9.7231, 9.2241, 8.7401, 8.2716, 7.8186, 7.3813, 6.9617, 6.5559, 6.1666, 5.7922, 5.4316,
		5.0868, 4.7623, 4.4493, 4.1495, 3.8668, 3.5948, 3.3393, 3.0998, 2.8748, 2.6586, 2.4541, 2.2661,
		2.0859, 1.9184, 1.7581, 1.6169, 1.4782, 1.3528, 1.2297, 1.1234, 1.0254, 0.9281, 0.8421, 0.7623,
		0.6907, 0.6255, 0.5685, 0.5172, 0.4685, 0.4315, 0.3863, 0.3464, 0.3075, 0.2768, 0.2548, 0.2284,
		0.2019, 0.1684, 0.149, 0.1181, 0.0979, 0.0775, 0.0565, 0.0582, 0.0374, 0.018, 0.0044, -0.0105,
		-0.0269, -0.0322, -0.0391, -0.0462, -0.0519, -0.0519, -0.0681, -0.0833, -0.0948, -0.0848,
		-0.1017, -0.0952, -0.0937, -0.0941, -0.0997, -0.0867, -0.1043, -0.1079, -0.1044, -0.1025,
		-0.1081, -0.1092, -0.114, -0.1277,
	},
	5: {
		21.7794, 21.262, 20.752, 20.2494, 19.754, 19.2652, 18.7852, 18.3126, 17.8481, 17.39, 16.9398,
		16.4956, 16.0602, 15.6311, 15.2112, 14.7995, 14.3945, 13.9961, 13.6072, 13.2228, 12.8498, 12.481,
		12.1201, 11.7636, 11.4153, 11.0771, 10.7477, 10.4247, 10.1066, 9.7961, 9.4911, 9.1946, 8.9052,
		8.6188, 8.34, 8.0678, 7.8022, 7.5478, 7.2993, 7.0497, 6.8131, 6.5817, 6.3536, 6.1375, 5.9232,
		5.7158, 5.5162, 5.3191, 5.1245, 4.9406, 4.7569, 4.5841, 4.4123, 4.2417, 4.0791, 3.9231, 3.7714,
		3.6179, 3.4797, 3.3428, 3.2095, 3.0803, 2.9591, 2.8385, 2.7238, 2.6083, 2.5086, 2.4007, 2.2997,
		2.2024, 2.1063, 2.0175, 1.9319, 1.8473, 1.7651, 1.6775, 1.6033, 1.5243, 1.4555, 1.3869, 1.3226,
		1.2573, 1.199, 1.1371, 1.0837, 1.0232, 0.9804, 0.937, 0.8975, 0.8498, 0.8017, 0.7606, 0.7243,
		0.6869, 0.653, 0.6153, 0.5852, 0.5526, 0.5247, 0.4957, 0.4612, 0.4336, 0.4071, 0.3791, 0.3539,
		0.333, 0.3161, 0.2854, 0.2765, 0.2588, 0.2384, 0.2167, 0.2016, 0.1776, 0.1707, 0.1563, 0.1444,
		0.1383, 0.1315, 0.1257, 0.1237, 0.1138, 0.1025, 0.0894, 0.0778, 0.0763, 0.0631, 0.0598, 0.0552,
		0.05, 0.0435, 0.0356, 0.0363, 0.0252, 0.0163, 0.0076, -0.001, -0.0092, -0.0141, -0.0158, -0.0258,
		-0.033, -0.0327, -0.037, -0.0285, -0.0263, -0.0237, -0.0146, -0.0215, -0.0312, -0.0336, -0.0415,
		-0.0422, -0.0406, -0.0378, -0.0407, -0.0438, -0.0492, -0.0512, -0.0583, -0.0571, -0.0515,
		-0.0532, -0.0617, -0.0545, -0.05, -0.0576,
	},
	6: {
		44.8539, 44.3353, 43.8211, 43.3094, 42.8011, 42.2979, 41.7983, 41.3023, 40.8096, 40.3208,
		39.8351, 39.3525, 38.8742, 38.3988, 37.9275, 37.4596, 36.9961, 36.5374, 36.0821, 35.6306, 35.18,
		34.7363, 34.2953, 33.8571, 33.4235, 32.9944, 32.5672, 32.1452, 31.7259, 31.3119, 30.9005,
		30.4917, 30.0858, 29.6831, 29.2847, 28.8919, 28.5026, 28.1156, 27.7319, 27.354, 26.9765, 26.606,
		26.2367, 25.8704, 25.5076, 25.1499, 24.7975, 24.4448, 24.0977, 23.7534, 23.4146, 23.0761,
		22.7408, 22.4104, 22.0831, 21.7625, 21.4419, 21.1216, 20.8087, 20.4994, 20.194, 19.8933, 19.594,
		19.2947, 19.0011, 18.7103, 18.4241, 18.1408, 17.8655, 17.5856, 17.3096, 17.0392, 16.7718,
		16.5055, 16.2429, 15.9819, 15.7254, 15.4743, 15.2265, 14.9782, 14.7358, 14.4954, 14.2601,
		14.0271, 13.7996, 13.5703, 13.3422, 13.1227, 12.9046, 12.686, 12.4696, 12.2575, 12.0447, 11.8365,
		11.6374, 11.4395, 11.2396, 11.0407, 10.8484, 10.6575, 10.4714, 10.2898, 10.1072, 9.9289, 9.7491,
		9.5671, 9.3988, 9.2308, 9.0692, 8.9094, 8.7448, 8.5806, 8.4279, 8.2698, 8.1142, 7.9668, 7.8207,
		7.6749, 7.5304, 7.3919, 7.2561, 7.1176, 6.9905, 6.8515, 6.721, 6.5928, 6.4637, 6.3429, 6.2197,
		6.0985, 5.9819, 5.8631, 5.7516, 5.6392, 5.5316, 5.4228, 5.3131, 5.2031, 5.0958, 4.9964, 4.8955,
		4.7976, 4.7043, 4.6104, 4.5196, 4.4306, 4.3381, 4.2537, 4.1686, 4.0799, 3.9934, 3.9093, 3.8281,
		3.7494, 3.6786, 3.6024, 3.5229, 3.449, 3.3853, 3.3157, 3.2552, 3.1831, 3.1109, 3.0437, 2.9811,
		2.9065, 2.8476, 2.7837, 2.716, 2.6554, 2.6021, 2.5361, 2.4735, 2.4193, 2.3686, 2.3197, 2.2702,
		2.2233, 2.1716, 2.1263, 2.077, 2.0306, 1.9797, 1.939, 1.8992, 1.8547, 1.8191, 1.7732, 1.7265,
		1.6784, 1.6412, 1.6076, 1.5657, 1.5249, 1.484, 1.4459, 1.408, 1.3775, 1.3416, 1.3028, 1.2738,
		1.2286, 1.2086, 1.17, 1.1287, 1.0962, 1.0687, 1.0392, 1.0173, 0.9971, 0.9657, 0.9358, 0.9188,
		0.8959, 0.871, 0.8468, 0.818, 0.7977, 0.7726, 0.7486, 0.7317, 0.7196, 0.7065, 0.6728, 0.6552,
		0.6288, 0.6123, 0.6033, 0.5849, 0.5692, 0.5549, 0.5284, 0.5086, 0.4893, 0.4764, 0.4659, 0.4469,
		0.43, 0.4166, 0.4016, 0.3911, 0.3795, 0.3612, 0.3506, 0.3387, 0.3243, 0.3039, 0.3028, 0.2814,
		0.2682, 0.2514, 0.2475, 0.2415, 0.2294, 0.2173, 0.2126, 0.209, 0.1853, 0.1783, 0.1764, 0.1716,
		0.1626, 0.1631, 0.1713, 0.1674, 0.1536, 0.1469, 0.1428, 0.1427, 0.1386, 0.1317, 0.118, 0.1067,
		0.089, 0.077, 0.0775, 0.0657, 0.0585, 0.0532, 0.0397, 0.0384, 0.0426, 0.0395, 0.0378, 0.0467,
		0.0495, 0.0428, 0.049, 0.0372, 0.0274, 0.014, -0.0016, -0.0002, -0.0102, -0.0229, -0.0287,
		-0.0301, -0.0276, -0.0274, -0.0434, -0.0492, -0.0592, -0.0618, -0.0726, -0.0752, -0.0796,
		-0.0759, -0.096, -0.0929, -0.09, -0.0975, -0.0874, -0.0867, -0.0788, -0.0818, -0.0993, -0.1041,
		-0.1007, -0.0967, -0.1079, -0.0989, -0.1083, -0.1125, -0.1077, -0.1008, -0.0942, -0.0967,
		-0.0911, -0.0858, -0.0829, -0.0933, -0.087, -0.0921,
	},
	7: {
		89.998, 88.4584, 86.9355, 85.4278, 83.9358, 82.462, 81.003, 79.5624, 78.1372, 76.7291, 75.3369,
		73.9605, 72.5987, 71.2565, 69.9303, 68.62, 67.3268, 66.0509, 64.7873, 63.5433, 62.3107, 61.0985,
		59.9013, 58.7193, 57.5549, 56.406, 55.2753, 54.1586, 53.0582, 51.9753, 50.9046, 49.8501, 48.814,
		47.792, 46.7829, 45.7913, 44.8155, 43.8527, 42.905, 41.9744, 41.054, 40.1528, 39.261, 38.3902,
		37.5288, 36.6824, 35.853, 35.0389, 34.2363, 33.4456, 32.6749, 31.9136, 31.1633, 30.4346, 29.7217,
		29.0131, 28.3234, 27.6418, 26.9793, 26.3245, 25.6797, 25.0441, 24.4223, 23.814, 23.2213, 22.6438,
		22.0769, 21.519, 20.9709, 20.4336, 19.902, 19.3777, 18.8764, 18.3752, 17.8977, 17.4275, 16.9661,
		16.5165, 16.0712, 15.6413, 15.2296, 14.8217, 14.416, 14.0117, 13.628, 13.2516, 12.8781, 12.5255,
		12.1788, 11.8384, 11.5099, 11.1834, 10.857, 10.5463, 10.2593, 9.9618, 9.6699, 9.3995, 9.1314,
		8.8698, 8.6196, 8.356, 8.1009, 7.8495, 7.6175, 7.3874, 7.1623, 6.9617, 6.7359, 6.5258, 6.3337,
		6.1491, 5.9557, 5.7659, 5.5797, 5.3933, 5.2237, 5.0752, 4.9137, 4.7649, 4.621, 4.4714, 4.3366,
		4.2006, 4.0662, 3.9321, 3.8058, 3.6736, 3.5528, 3.4231, 3.3057, 3.1928, 3.0789, 2.9538, 2.8514,
		2.7515, 2.6568, 2.56, 2.4708, 2.3877, 2.2986, 2.2178, 2.1328, 2.0575, 1.9931, 1.9329, 1.8683,
		1.8109, 1.7433, 1.6801, 1.6272, 1.5898, 1.5402, 1.4887, 1.4254, 1.3845, 1.3317, 1.2846, 1.2235,
		1.1619, 1.1234, 1.1078, 1.0732, 1.0349, 0.981, 0.9651, 0.9283, 0.8821, 0.8559, 0.8146, 0.7891,
		0.7705, 0.7345, 0.6882, 0.66, 0.638, 0.6281, 0.5909, 0.5846, 0.5784, 0.5301, 0.5096, 0.4889,
		0.4785, 0.4455, 0.4307, 0.4056, 0.3623, 0.3405, 0.3396, 0.3147, 0.2926, 0.3069, 0.293, 0.2852,
		0.2617, 0.2704, 0.2703, 0.2647, 0.2801, 0.2626, 0.2594, 0.2302, 0.2276, 0.23, 0.236, 0.2348,
		0.2107, 0.2059, 0.2086, 0.1924, 0.1777, 0.171, 0.1867, 0.1828, 0.1668, 0.1739, 0.1782, 0.164,
		0.156, 0.1503, 0.1358,
	},
	8: {
		180.7721, 177.6974, 174.6578, 171.6493, 168.6727, 165.7295, 162.8189, 159.941, 157.0973,
		154.2832, 151.5012, 148.7541, 146.0386, 143.3589, 140.7092, 138.0941, 135.5099, 132.9561,
		130.4336, 127.9516, 125.4964, 123.0734, 120.6856, 118.3313, 116.0052, 113.7141, 111.4524,
		109.2163, 107.0177, 104.8494, 102.7145, 100.6087, 98.5301, 96.4854, 94.4733, 92.4874, 90.527,
		88.6016, 86.7138, 84.8514, 83.0227, 81.2113, 79.4448, 77.697, 75.9681, 74.2832, 72.6199, 70.9813,
		69.3734, 67.7885, 66.23, 64.7048, 63.21, 61.7385, 60.2925, 58.8738, 57.4813, 56.1217, 54.7843,
		53.4759, 52.198, 50.9327, 49.6875, 48.4774, 47.2997, 46.1363, 44.9825, 43.8536, 42.7609, 41.6719,
		40.6191, 39.5819, 38.575, 37.5952, 36.6283, 35.6794, 34.7493, 33.8332, 32.9397, 32.0656, 31.1981,
		30.3655, 29.5551, 28.7548, 27.9666, 27.1997, 26.4567, 25.7478, 25.0484, 24.3459, 23.6744,
		23.0208, 22.373, 21.7366, 21.1249, 20.5219, 19.9402, 19.3772, 18.8191, 18.2819, 17.7652, 17.2428,
		16.7541, 16.2672, 15.7797, 15.3252, 14.8639, 14.4391, 14.0208, 13.5865, 13.1829, 12.7886, 12.416,
		12.0509, 11.6902, 11.3338, 10.976, 10.6312, 10.3168, 10.0081, 9.7095, 9.41, 9.1285, 8.8423,
		8.5558, 8.2751, 8.0097, 7.7558, 7.5196, 7.2963, 7.0494, 6.8208, 6.5994, 6.3849, 6.1908, 5.9558,
		5.7393, 5.5632, 5.3775, 5.2045, 5.0236, 4.8457, 4.6771, 4.5134, 4.3757, 4.2118, 4.0611, 3.951,
		3.8195, 3.7064, 3.5657, 3.456, 3.3395, 3.2293, 3.1082, 3.0073, 2.9193, 2.8347, 2.7334, 2.61,
		2.5154, 2.4224, 2.3533, 2.3101, 2.2295, 2.1408, 2.0694, 1.9953, 1.924, 1.8448, 1.759, 1.6742,
		1.6128, 1.546, 1.4763, 1.421, 1.3649, 1.3279, 1.3058, 1.2667, 1.2212, 1.1606, 1.1015, 1.0431,
		0.9819, 0.9317, 0.9062, 0.8601, 0.833, 0.8348, 0.805, 0.8013, 0.756, 0.756, 0.7305, 0.7426,
		0.7315, 0.6969, 0.6841, 0.6696, 0.6245, 0.5972, 0.5762, 0.5627, 0.5315, 0.5276, 0.5076, 0.4933,
		0.464, 0.4214, 0.4173, 0.408, 0.4058, 0.3839, 0.3922, 0.3831, 0.3517, 0.3293, 0.2974, 0.3143,
		0.3084, 0.2982,
	},
	9: {
		361.8096, 355.1676, 348.6018, 342.113, 335.7024, 329.3639, 323.1001, 316.9145, 310.8083,
		304.7798, 298.8284, 292.9516, 287.1452, 281.4174, 275.7655, 270.1919, 264.6917, 259.2727,
		253.9287, 248.6632, 243.4716, 238.3545, 233.3044, 228.337, 223.4406, 218.623, 213.8694, 209.1901,
		204.5861, 200.0575, 195.5958, 191.2133, 186.9009, 182.6528, 178.481, 174.3849, 170.3528,
		166.3961, 162.5055, 158.6685, 154.9099, 151.2308, 147.5996, 144.0403, 140.5494, 137.1103,
		133.7529, 130.4644, 127.2258, 124.0364, 120.9301, 117.8624, 114.8551, 111.918, 109.048, 106.2072,
		103.4249, 100.7218, 98.0836, 95.4993, 92.9545, 90.4593, 88.0459, 85.67, 83.3495, 81.0616,
		78.8467, 76.69, 74.5604, 72.463, 70.4207, 68.4596, 66.5248, 64.6438, 62.79, 60.9789, 59.2149,
		57.5058, 55.8364, 54.1955, 52.602, 51.0391, 49.5526, 48.0817, 46.6367, 45.2304, 43.8744, 42.5554,
		41.2644, 40.0135, 38.8165, 37.6274, 36.438, 35.3117, 34.2102, 33.1622, 32.0965, 31.0791, 30.1043,
		29.1297, 28.2101, 27.321, 26.4505, 25.5835, 24.7348, 23.9078, 23.1353, 22.3567, 21.6256, 20.9219,
		20.2331, 19.54, 18.8913, 18.2451, 17.6048, 17.0234, 16.4653, 15.9165, 15.3523, 14.8311, 14.3154,
		13.8262, 13.3722, 12.9334, 12.4734, 12.0472, 11.6272, 11.1968, 10.798, 10.4363, 10.0717, 9.7041,
		9.3666, 9.0339, 8.7027, 8.4158, 8.1219, 7.8239, 7.5451, 7.2878, 7.039, 6.7851, 6.5163, 6.256,
		6.0318, 5.827, 5.6218, 5.423, 5.1898, 4.9967, 4.8012, 4.6167, 4.5006, 4.3104, 4.1721, 4.0066,
		3.8627, 3.7048, 3.5922, 3.4322, 3.2494, 3.1379, 3.0602, 2.9589, 2.8661, 2.7812, 2.6465, 2.5361,
		2.4219, 2.3357, 2.2414, 2.1609, 2.0467, 1.9492, 1.8909, 1.8354, 1.7894, 1.7937, 1.7368, 1.6522,
		1.6258, 1.5642, 1.5227, 1.4349, 1.3588, 1.3076, 1.2443, 1.1811, 1.1332, 1.1149, 1.0396, 1.012,
		0.9723, 0.923, 0.8776, 0.8372, 0.8133, 0.7564, 0.7084, 0.6989, 0.6715, 0.6405, 0.6149, 0.552,
	},
	10: {
		724.4061, 711.128, 698.0052, 685.0306, 672.2081, 659.5367, 647.0193, 634.6545, 622.4421,
		610.3876, 598.4833, 586.7294, 575.1278, 563.682, 552.3891, 541.2392, 530.2407, 519.398, 508.7142,
		498.1772, 487.7914, 477.5431, 467.455, 457.5058, 447.7149, 438.0681, 428.5781, 419.2341, 410.034,
		400.9722, 392.0618, 383.2925, 374.6651, 366.1811, 357.835, 349.6388, 341.5637, 333.6214,
		325.8249, 318.1882, 310.6746, 303.2983, 296.0409, 288.9071, 281.904, 275.0338, 268.295, 261.6902,
		255.2159, 248.832, 242.5873, 236.4549, 230.4708, 224.5971, 218.8252, 213.1796, 207.6649,
		202.2519, 196.9367, 191.7508, 186.6771, 181.6799, 176.8204, 172.047, 167.3742, 162.8262,
		158.3702, 154.0013, 149.7459, 145.5782, 141.5215, 137.5589, 133.7071, 129.9007, 126.1927,
		122.6189, 119.0713, 115.6271, 112.2784, 109.0225, 105.815, 102.6703, 99.6388, 96.647, 93.7648,
		90.9648, 88.1994, 85.5178, 82.9113, 80.3605, 77.8813, 75.4438, 73.097, 70.8145, 68.5911, 66.4342,
		64.3271, 62.3174, 60.3422, 58.3791, 56.5228, 54.713, 52.9444, 51.2853, 49.6191, 47.9835, 46.422,
		44.9035, 43.4157, 41.9534, 40.5739, 39.2657, 37.9495, 36.6948, 35.4255, 34.2185, 33.0865,
		31.9565, 30.9554, 29.8803, 28.8809, 27.912, 26.9435, 26.0302, 25.0946, 24.2665, 23.4273, 22.5683,
		21.7654, 20.935, 20.1886, 19.5149, 18.8226, 18.1239, 17.4773, 16.8618, 16.2946, 15.697, 15.1006,
		14.5286, 13.9925, 13.5013, 12.9966, 12.5225, 12.0298, 11.6088, 11.1277, 10.7579, 10.3682, 9.9466,
		9.5742, 9.236, 8.8323, 8.484, 8.1408, 7.8696, 7.6017, 7.2814, 6.9762, 6.6987, 6.4799, 6.2269,
		5.9435, 5.7301, 5.5228, 5.3229, 5.1378, 4.8838, 4.6773, 4.5031, 4.2919, 4.1481, 3.9852, 3.8267,
		3.6126, 3.4504, 3.2646, 3.1416, 3.0389, 2.9139, 2.8351, 2.6739, 2.5435, 2.3966, 2.3842, 2.2612,
		2.1305, 2.0405, 2.0252, 1.9192, 1.7293, 1.6253, 1.609, 1.5103, 1.4383, 1.3611, 1.2499, 1.2112,
		1.1934, 1.1545, 1.1092, 1.0499, 0.9943, 0.9238,
	},
	11: {
		1449.0783, 1422.0288, 1395.2971, 1368.879, 1342.7718, 1316.9948, 1291.517, 1266.3687, 1241.5379,
		1217.0236, 1192.8183, 1168.9291, 1145.3595, 1122.1184, 1099.1817, 1076.5599, 1054.2461,
		1032.2557, 1010.5758, 989.2163, 968.1606, 947.4053, 926.9655, 906.8312, 887.0095, 867.4857,
		848.2684, 829.3448, 810.7243, 792.4209, 774.4017, 756.6912, 739.281, 722.1669, 705.3542,
		688.7913, 672.5441, 656.5864, 640.9168, 625.516, 610.3765, 595.5108, 580.9425, 566.6409,
		552.6014, 538.8346, 525.3429, 512.0843, 499.094, 486.3825, 473.9131, 461.6677, 449.6797,
		437.9262, 426.4184, 415.1528, 404.1428, 393.38, 382.8547, 372.5129, 362.4104, 352.5079, 342.8643,
		333.3985, 324.1685, 315.1435, 306.3289, 297.7566, 289.3076, 281.1047, 273.0777, 265.2237,
		257.5945, 250.1127, 242.7922, 235.6568, 228.7008, 221.9238, 215.309, 208.8211, 202.5608,
		196.4266, 190.4613, 184.6375, 178.9882, 173.4862, 168.1655, 162.9042, 157.829, 152.8915,
		148.0868, 143.3847, 138.8329, 134.4264, 130.1244, 125.9704, 121.8481, 117.9174, 114.0975,
		110.3747, 106.8159, 103.3024, 99.9396, 96.673, 93.3533, 90.3259, 87.3465, 84.424, 81.5772,
		78.8055, 76.1335, 73.5487, 71.0559, 68.558, 66.1713, 63.8626, 61.67, 59.5408, 57.4326, 55.3983,
		53.4075, 51.573, 49.7693, 48.0129, 46.2502, 44.5618, 42.9593, 41.4481, 40.0023, 38.6023, 37.2288,
		35.8893, 34.6138, 33.3627, 32.0972, 30.936, 29.8669, 28.7456, 27.6512, 26.6029, 25.6547, 24.734,
		23.7438, 22.7834, 21.9529, 21.0832, 20.2965, 19.5515, 18.8368, 18.1667, 17.5213, 16.9307, 16.28,
		15.6073, 14.9078, 14.3229, 13.7309, 13.1432, 12.6269, 12.1124, 11.5601, 11.1161, 10.6265,
		10.2372, 9.7655, 9.4094, 8.9675, 8.5964, 8.231, 7.9153, 7.5411, 7.2596, 6.9535, 6.6725, 6.3857,
		6.1349, 5.8593, 5.6034, 5.4228, 5.2497, 5.0166, 4.7428, 4.5642, 4.3843, 4.1871, 3.909, 3.6904,
		3.4851, 3.3607, 3.2014, 3.0186, 2.8122, 2.7727, 2.5978, 2.5155, 2.3187, 2.2755, 2.1751, 2.0955,
		2.0199,
	},
	12: {
		2898.9464, 2844.8586, 2791.392, 2738.5665, 2686.3599, 2634.7782, 2583.8348, 2533.5461, 2483.8758,
		2434.8602, 2386.4694, 2338.7137, 2291.5969, 2245.0972, 2199.2253, 2153.9816, 2109.3888,
		2065.3967, 2022.0375, 1979.3378, 1937.244, 1895.7547, 1854.8932, 1814.6443, 1775.0204, 1735.9752,
		1697.5365, 1659.7113, 1622.5185, 1585.9156, 1549.9202, 1514.4768, 1479.6744, 1445.4109,
		1411.8109, 1378.7448, 1346.2024, 1314.2349, 1282.8547, 1252.0531, 1221.766, 1192.0951, 1162.9044,
		1134.2992, 1106.2504, 1078.712, 1051.653, 1025.1284, 999.1299, 973.6667, 948.7621, 924.2674,
		900.3075, 876.8209, 853.808, 831.2372, 809.1501, 787.5421, 766.3983, 745.7307, 725.5345,
		705.7105, 686.3194, 667.3432, 648.8361, 630.7095, 612.9851, 595.6645, 578.8513, 562.331,
		546.2307, 530.5289, 515.2115, 500.1796, 485.479, 471.2295, 457.2707, 443.645, 430.489, 417.5451,
		405.0701, 392.7627, 380.925, 369.3701, 358.0098, 347.0333, 336.3658, 325.8642, 315.6601,
		305.6753, 296.0275, 286.6837, 277.4973, 268.6054, 260.0145, 251.6697, 243.4394, 235.5696,
		227.9891, 220.5849, 213.3515, 206.3334, 199.5052, 192.8415, 186.3588, 180.0165, 173.9526,
		168.0257, 162.2245, 156.7031, 151.4433, 146.3611, 141.1531, 136.2624, 131.61, 127.0118, 122.5889,
		118.2017, 114.0388, 110.0304, 106.1484, 102.2625, 98.5917, 94.9921, 91.4334, 87.9947, 84.8379,
		81.7275, 78.5988, 75.6892, 72.9881, 70.3848, 67.7612, 65.185, 62.6905, 60.3974, 58.1079, 55.9191,
		53.8263, 51.7144, 49.6525, 47.6596, 45.7986, 44.0545, 42.3084, 40.691, 39.1489, 37.7455, 36.2139,
		34.74, 33.2797, 32.0904, 30.8928, 29.757, 28.4847, 27.415, 26.3132, 25.2431, 24.0777, 22.9624,
		22.2029, 21.2836, 20.3609, 19.442, 18.6755, 17.9655, 17.2182, 16.417, 15.6839, 15.256, 14.5058,
		13.829, 13.2386, 12.6611, 12.0763, 11.3196, 10.635, 10.2533, 9.8198, 9.4086, 8.9263, 8.5887,
		8.1874, 7.9142, 7.6116, 7.3734, 6.8498, 6.7351, 6.5749, 6.303, 6.0191, 5.7445, 5.5341, 5.3992,
		5.1109, 4.7968, 4.7021, 4.6176, 4.4279, 4.2383,
	},
	13: {
		5798.6749, 5690.5253, 5583.6175, 5477.9515, 5373.5471, 5270.4083, 5168.5336, 5067.963, 4968.6765,
		4870.6403, 4773.8509, 4678.3515, 4584.128, 4491.1182, 4399.4132, 4308.9908, 4219.7651, 4131.8083,
		4045.1013, 3959.6874, 3875.4607, 3792.4863, 3710.7368, 3630.2819, 3551.026, 3472.9592, 3396.1401,
		3320.459, 3246.017, 3172.8203, 3100.7662, 3029.9671, 2960.281, 2891.7296, 2824.3959, 2758.2557,
		2693.2449, 2629.3927, 2566.5664, 2504.8908, 2444.3713, 2384.9121, 2326.5643, 2269.3467,
		2213.2938, 2158.2698, 2104.1789, 2051.1439, 1999.197, 1948.17, 1898.3644, 1849.4634, 1801.3947,
		1754.4862, 1708.5873, 1663.5828, 1619.5838, 1576.4064, 1534.2654, 1492.8425, 1452.2741, 1412.71,
		1374.093, 1336.2628, 1299.1991, 1263.0233, 1227.7776, 1193.169, 1159.4963, 1126.5414, 1094.3459,
		1062.8802, 1032.2601, 1002.2567, 973.024, 944.5555, 916.8476, 889.7663, 863.1228, 837.2969,
		812.0573, 787.6667, 763.7104, 740.5958, 717.87, 695.7673, 674.3188, 653.287, 632.9919, 613.0494,
		593.7363, 574.8528, 556.5809, 538.7555, 521.5471, 504.7156, 488.2849, 472.3754, 457.066, 441.884,
		427.257, 413.1114, 399.526, 386.0862, 373.0877, 360.7011, 348.2875, 336.5486, 325.0888, 313.9355,
		303.0167, 292.874, 282.8828, 272.9557, 263.2513, 253.9346, 245.0311, 236.383, 228.0299, 219.9924,
		212.0184, 204.0343, 196.7232, 189.4111, 182.4463, 175.9634, 169.556, 163.4579, 157.4821,
		151.8253, 146.3027, 140.8629, 135.6743, 130.4772, 125.4668, 120.5156, 116.2041, 111.8822,
		107.692, 103.562, 100.0885, 96.3567, 92.8043, 88.8917, 85.5368, 82.3767, 79.3871, 76.4549,
		73.806, 71.2964, 68.7413, 66.1212, 63.4692, 60.7268, 58.2541, 55.7973, 53.4849, 51.472, 49.2886,
		47.2931, 45.4572, 43.3864, 41.6896, 40.0138, 38.369, 36.7917, 35.2775, 34.0268, 33.0089, 31.8877,
		30.6145, 29.1525, 28.1123, 27.2218, 25.9271, 24.7161, 23.7519, 22.7611, 21.8287, 21.3287, 20.521,
		19.6041, 18.713, 18.0605, 17.6254, 17.1415, 16.4848, 15.5859, 14.9806, 14.4902, 13.8838, 13.185,
		12.4281, 11.4307, 11.198, 10.7461, 10.3964, 10.2368, 10.1455, 9.1956,
	},
	14: {
		11597.6423, 11380.8071, 11166.4535, 10954.6809, 10745.4333, 10538.7245, 10334.5522, 10133.0511,
		9934.0354, 9737.5572, 9543.6242, 9352.1678, 9163.2307, 8976.8724, 8793.119, 8611.7941, 8433.1561,
		8256.9096, 8083.2175, 7912.0161, 7743.3065, 7577.1147, 7413.3375, 7252.1659, 7093.4016,
		6937.1183, 6783.2028, 6631.826, 6482.8491, 6336.0868, 6191.9535, 6050.0524, 5910.6608, 5773.4728,
		5638.6854, 5506.2099, 5376.0641, 5248.0764, 5122.7659, 4999.5527, 4878.4319, 4759.5438,
		4642.9137, 4528.1791, 4415.7912, 4305.5699, 4197.3983, 4091.4051, 3987.4471, 3885.6355,
		3785.5672, 3687.5165, 3591.8238, 3497.7462, 3405.7036, 3315.2704, 3227.0521, 3140.7846,
		3056.2174, 2973.3825, 2892.5775, 2813.454, 2735.9309, 2660.3414, 2586.427, 2513.8803, 2443.2882,
		2374.2008, 2306.6595, 2241.0151, 2177.1531, 2114.1499, 2052.9914, 1993.2794, 1935.1267,
		1877.7938, 1822.3002, 1768.3082, 1715.0295, 1663.1821, 1612.9637, 1564.0311, 1516.2986,
		1470.2781, 1425.1066, 1381.1877, 1338.0411, 1296.4905, 1256.0961, 1216.4427, 1177.9748,
		1140.7366, 1104.046, 1068.4066, 1033.9458, 1000.2509, 967.8625, 936.3222, 905.3056, 875.4429,
		846.4196, 818.5856, 791.6079, 765.0129, 739.261, 714.2271, 690.4577, 666.8078, 644.0399,
		621.8859, 600.6917, 579.7959, 559.0924, 540.2546, 521.0586, 502.4093, 485.0012, 467.4222,
		450.7427, 434.9708, 418.8997, 403.868, 389.3392, 375.1106, 361.3232, 348.2655, 335.3133,
		322.8791, 311.2057, 299.8513, 288.6339, 278.339, 267.9634, 257.554, 248.4177, 238.602, 229.5205,
		221.3184, 212.3352, 204.1436, 195.7345, 188.2674, 180.9705, 173.5306, 166.6075, 160.2136,
		153.9436, 147.9435, 142.3644, 136.6553, 130.6609, 125.6384, 120.4288, 115.8458, 110.7966,
		105.7939, 100.9903, 97.2909, 93.3129, 89.1792, 85.7334, 81.945, 78.5452, 74.5499, 70.6665,
		67.7172, 64.8377, 62.6108, 60.6353, 58.1926, 55.725, 52.5688, 50.7179, 48.5027, 45.9386, 43.9179,
		42.6374, 41.0254, 39.4806, 38.2367, 36.6357, 34.9554, 33.6783, 32.6023, 31.2608, 29.8315,
		28.2439, 27.0837, 26.0133, 25.1205, 24.228, 22.6892, 21.877, 20.7414, 19.7323, 18.235, 16.8172,
		15.3569, 13.2754, 12.3448,
	},
	15: {
		23195.4708, 22761.3258, 22332.2122, 21908.1519, 21489.2408, 21075.355, 20666.5965, 20262.9466,
		19864.4374, 19470.9645, 19082.671, 18699.496, 18321.2257, 17948.0712, 17580.2106, 17217.1718,
		16859.3542, 16506.4745, 16158.7676, 15816.1314, 15478.3081, 15145.7213, 14817.8346, 14495.0717,
		14176.9873, 13864.0656, 13556.1042, 13252.9498, 12954.6396, 12661.2102, 12372.771, 12088.8525,
		11809.7425, 11535.4014, 11265.3427, 11000.495, 10740.1359, 10484.3726, 10232.951, 9986.5516,
		9744.3181, 9506.2918, 9272.8139, 9043.7553, 8818.874, 8598.1992, 8381.6556, 8169.195, 7961.7255,
		7757.8295, 7558.3224, 7362.4222, 7170.9309, 6983.0406, 6799.3355, 6619.1573, 6442.5811,
		6269.3741, 6100.1257, 5934.3339, 5772.6913, 5614.4695, 5459.4644, 5308.0562, 5161.1815,
		5016.6262, 4875.231, 4737.9125, 4602.854, 4471.2523, 4342.7263, 4217.5928, 4094.4942, 3975.4473,
		3859.2198, 3746.2238, 3635.2367, 3527.8139, 3422.5082, 3319.4485, 3219.3676, 3122.2006,
		3027.3149, 2934.3184, 2843.5317, 2755.1621, 2670.797, 2587.4386, 2506.7279, 2427.116, 2349.8799,
		2275.3762, 2201.9416, 2130.6067, 2061.7706, 1994.8638, 1929.4656, 1865.703, 1803.8821, 1743.7218,
		1684.7626, 1628.4157, 1573.9053, 1520.079, 1469.0157, 1419.8996, 1371.3372, 1324.992, 1279.3709,
		1235.8416, 1192.9043, 1151.056, 1111.1336, 1073.0531, 1036.0646, 998.7882, 963.239, 929.0538,
		896.7967, 863.8175, 831.8736, 801.5988, 772.2128, 745.6947, 719.8036, 693.5413, 667.7422,
		643.0501, 619.3654, 596.2897, 572.9255, 549.9986, 528.6942, 509.8532, 491.81, 471.7302, 452.0182,
		433.6693, 416.2992, 399.845, 383.9101, 368.7062, 353.612, 339.2394, 325.0876, 310.7459, 298.8521,
		286.1742, 274.7846, 263.4245, 252.2885, 241.6085, 231.891, 221.9288, 212.9165, 203.3464,
		194.5784, 185.9562, 179.1308, 171.4733, 162.3457, 156.5226, 149.3838, 142.6842, 135.3841,
		129.2954, 121.3916, 116.2712, 111.5364, 106.2204, 100.1176, 93.7951, 88.0409, 84.0078, 79.4186,
		75.2188, 72.6188, 68.7783, 64.8535, 60.0675, 55.7738, 52.75, 49.4865, 46.3848, 42.1206, 40.3216,
		37.0389, 34.5787, 33.8282, 31.13, 26.9205, 25.6078, 22.3124, 20.3165, 17.2658, 13.4297, 10.9825,
		10.293, 9.7029, 9.3243,
	},
	16: {
		46391.3823, 45522.5138, 44663.77, 43815.2409, 42977.0746, 42149.032, 41331.2163, 40523.4629,
		39725.9627, 38938.6991, 38161.6088, 37395.029, 36638.537, 35892.2447, 35156.0681, 34430.1001,
		33714.2664, 33008.4383, 32313.018, 31627.327, 30951.7306, 30286.4082, 29630.8291, 28985.5387,
		28349.8542, 27723.4951, 27107.3824, 26500.9008, 25904.1232, 25317.8778, 24740.609, 24173.2029,
		23615.393, 23066.7232, 22526.8563, 21996.3792, 21475.7007, 20964.294, 20462.4055, 19969.5399,
		19484.526, 19008.2219, 18542.0038, 18084.2509, 17633.8886, 17193.6242, 16760.9507, 16337.3067,
		15921.7038, 15514.3152, 15114.7705, 14723.3499, 14339.658, 13964.1318, 13596.5312, 13235.2893,
		12883.3883, 12539.6681, 12202.0794, 11872.6886, 11549.4302, 11233.8824, 10923.5222, 10621.4262,
		10326.5167, 10038.2444, 9756.5236, 9480.1468, 9212.1324, 8948.5449, 8691.5962, 8440.4244,
		8197.1304, 7958.7729, 7726.2609, 7499.4071, 7276.1322, 7059.6507, 6848.7231, 6642.8726,
		6442.2149, 6246.5384, 6057.4096, 5872.8959, 5692.4228, 5516.6787, 5344.427, 5177.8103, 5016.2228,
		4857.3181, 4704.8634, 4556.5918, 4412.3142, 4269.9796, 4133.1179, 4000.016, 3873.0222, 3747.7681,
		3626.0434, 3506.8381, 3391.0514, 3278.8887, 3169.2047, 3064.2064, 2961.9774, 2862.0009, 2764.504,
		2669.9474, 2578.5803, 2488.0646, 2403.4218, 2319.7626, 2239.8785, 2163.7892, 2088.3637, 2015.278,
		1942.908, 1873.5802, 1808.0215, 1741.5786, 1680.1339, 1621.392, 1563.628, 1506.5899, 1451.4721,
		1398.0954, 1349.1697, 1297.3282, 1250.8687, 1205.4065, 1162.7707, 1119.4928, 1077.4301,
		1034.8005, 996.1522, 959.0816, 922.8247, 889.8423, 857.4778, 826.0731, 796.1469, 764.9254,
		736.6054, 708.9488, 682.0004, 655.4282, 629.664, 603.4038, 580.5433, 557.0087, 535.7006,
		515.8875, 495.2391, 477.4393, 458.5553, 440.8956, 425.6778, 405.8244, 391.489, 374.2346,
		360.2518, 345.8322, 332.749, 318.6094, 304.4221, 289.8812, 276.053, 265.3169, 256.3611, 242.5622,
		232.5293, 222.862, 216.083, 203.8214, 197.5248, 191.297, 186.5648, 179.5938, 172.5854, 164.4899,
		157.6337, 152.4166, 148.7627, 142.8981, 136.2302, 129.9835, 125.8906, 120.1681, 112.688,
		106.3814, 104.529, 99.0202, 95.1611, 92.2659, 86.1677, 81.4179, 75.1207, 71.7683, 69.3493,
		62.0873,
	},
}
