package chinese

// firstTableYear and lastTableYear bound the Lunar New Year table.
const (
	firstTableYear = 1924
	lastTableYear  = 2044
)

type monthDay struct {
	month int
	day   int
}

// lunarNewYear holds the Gregorian date of the first day of the lunar year,
// indexed by year-firstTableYear.
var lunarNewYear = [lastTableYear - firstTableYear + 1]monthDay{
	{2, 5},  // 1924
	{1, 24}, // 1925
	{2, 13}, // 1926
	{2, 2},  // 1927
	{1, 23}, // 1928
	{2, 10}, // 1929
	{1, 30}, // 1930
	{2, 17}, // 1931
	{2, 6},  // 1932
	{1, 26}, // 1933
	{2, 14}, // 1934
	{2, 4},  // 1935
	{1, 24}, // 1936
	{2, 11}, // 1937
	{1, 31}, // 1938
	{2, 19}, // 1939
	{2, 8},  // 1940
	{1, 27}, // 1941
	{2, 15}, // 1942
	{2, 5},  // 1943
	{1, 25}, // 1944
	{2, 13}, // 1945
	{2, 2},  // 1946
	{1, 22}, // 1947
	{2, 10}, // 1948
	{1, 29}, // 1949
	{2, 17}, // 1950
	{2, 6},  // 1951
	{1, 27}, // 1952
	{2, 14}, // 1953
	{2, 3},  // 1954
	{1, 24}, // 1955
	{2, 12}, // 1956
	{1, 31}, // 1957
	{2, 18}, // 1958
	{2, 8},  // 1959
	{1, 28}, // 1960
	{2, 15}, // 1961
	{2, 5},  // 1962
	{1, 25}, // 1963
	{2, 13}, // 1964
	{2, 2},  // 1965
	{1, 21}, // 1966
	{2, 9},  // 1967
	{1, 30}, // 1968
	{2, 17}, // 1969
	{2, 6},  // 1970
	{1, 27}, // 1971
	{2, 15}, // 1972
	{2, 3},  // 1973
	{1, 23}, // 1974
	{2, 11}, // 1975
	{1, 31}, // 1976
	{2, 18}, // 1977
	{2, 7},  // 1978
	{1, 28}, // 1979
	{2, 16}, // 1980
	{2, 5},  // 1981
	{1, 25}, // 1982
	{2, 13}, // 1983
	{2, 2},  // 1984
	{2, 20}, // 1985
	{2, 9},  // 1986
	{1, 29}, // 1987
	{2, 17}, // 1988
	{2, 6},  // 1989
	{1, 27}, // 1990
	{2, 15}, // 1991
	{2, 4},  // 1992
	{1, 23}, // 1993
	{2, 10}, // 1994
	{1, 31}, // 1995
	{2, 19}, // 1996
	{2, 7},  // 1997
	{1, 28}, // 1998
	{2, 16}, // 1999
	{2, 5},  // 2000
	{1, 24}, // 2001
	{2, 12}, // 2002
	{2, 1},  // 2003
	{1, 22}, // 2004
	{2, 9},  // 2005
	{1, 29}, // 2006
	{2, 18}, // 2007
	{2, 7},  // 2008
	{1, 26}, // 2009
	{2, 14}, // 2010
	{2, 3},  // 2011
	{1, 23}, // 2012
	{2, 10}, // 2013
	{1, 31}, // 2014
	{2, 19}, // 2015
	{2, 8},  // 2016
	{1, 28}, // 2017
	{2, 16}, // 2018
	{2, 5},  // 2019
	{1, 25}, // 2020
	{2, 12}, // 2021
	{2, 1},  // 2022
	{1, 22}, // 2023
	{2, 10}, // 2024
	{1, 29}, // 2025
	{2, 17}, // 2026
	{2, 6},  // 2027
	{1, 26}, // 2028
	{2, 13}, // 2029
	{2, 3},  // 2030
	{1, 23}, // 2031
	{2, 11}, // 2032
	{1, 31}, // 2033
	{2, 19}, // 2034
	{2, 8},  // 2035
	{1, 28}, // 2036
	{2, 15}, // 2037
	{2, 4},  // 2038
	{1, 24}, // 2039
	{2, 12}, // 2040
	{2, 1},  // 2041
	{1, 22}, // 2042
	{2, 10}, // 2043
	{1, 30}, // 2044
}
